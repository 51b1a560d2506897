package global

const (
	AppVersion = "1.0.0" // project version shown in logs and /healthz

	// Gin context keys set by the download-token middleware.
	// String constants avoid typos between middleware and handler.
	CtxCertNameKey  = "cert_name"
	CtxCertEventKey = "cert_event"

	// Redis list that receives the audit log.
	AuditLogKey = "logs:certdrive"
)
