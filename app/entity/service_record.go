package entity

// ServiceStatusPaymentVerified marks a workshop job whose payment was
// confirmed by the bank. The rest of the job document is owned by the web app.
const ServiceStatusPaymentVerified = "pagado_verificado"
