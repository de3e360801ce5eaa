package domain

// Reference lists back the /meta endpoints used by the web UI to populate selects.

var ClientStatuses = []ClientStatus{
	ClientStatusNew, ClientStatusActive, ClientStatusOnHold, ClientStatusDone, ClientStatusCancelled,
}

var DossierStatuses = []DossierStatus{
	DossierInProgress, DossierOnHold, DossierApproved, DossierRejected, DossierClosed, DossierCancelled,
}

var ClientTypes = []ClientType{ClientIndividual, ClientFamily, ClientGroup, ClientPhoneCall}

var VisaTypes = []VisaType{VisaTourism, VisaBusiness, VisaStudy, VisaWork, VisaFamily, VisaTransit}

var AttachmentTypes = []AttachmentType{
	AttachmentPassport, AttachmentPhoto, AttachmentBankStatement, AttachmentEmployment,
	AttachmentHotelBooking, AttachmentFlightTicket, AttachmentInsurance, AttachmentOther,
}

var ServiceTypes = []ServiceType{
	ServiceVisa, ServiceHotelBooking, ServiceFlightBooking, ServiceTravelInsurance,
	ServiceTranslation, ServiceAppointment, ServiceFullDossier, ServiceOther,
}

var PaymentOptions = []PaymentOption{PaymentCash, PaymentBankTransfer, PaymentCheck, PaymentCard}

var PaymentModalities = []PaymentModality{ModalityFull, ModalityInstallments}

var ExpenseCategories = []ExpenseCategory{
	ExpenseRent, ExpenseSalaries, ExpenseUtilities, ExpenseSupplies, ExpenseTaxes, ExpenseMarketing, ExpenseOther,
}
