package dto

// ForgotPasswordReq asks the auth provider to mail a reset link.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,notblank,email"`
}

// AuditLogQuery both parameters are required
type AuditLogQuery struct {
	CorporationUUID string `form:"corporation_uuid" json:"corporation_uuid" binding:"required,notblank"`
	EntityUUID      string `form:"entity_uuid" json:"entity_uuid" binding:"required,notblank"`
}

// PrintLinkQuery path of a printable view, e.g. /purchase-orders/123/print
type PrintLinkQuery struct {
	Path string `form:"path" json:"path" binding:"required,notblank"`
}

// PrintLinkResp absolute link to a printable view
type PrintLinkResp struct {
	URL string `json:"url"`
}
