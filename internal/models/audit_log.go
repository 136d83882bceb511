package models

// Audit actions recorded for successful writes and sign-in events.
const (
	AuditLogin          = "LOGIN"
	AuditLogout         = "LOGOUT"
	AuditCreateExpense  = "CREATE_EXPENSE"
	AuditUpdateExpense  = "UPDATE_EXPENSE"
	AuditDeleteExpense  = "DELETE_EXPENSE"
	AuditCreateCategory = "CREATE_CATEGORY"
	AuditDeleteCategory = "DELETE_CATEGORY"
	AuditUpsertBudget   = "UPSERT_BUDGET"
)

// AuditLog records user write operations and sign-in events.
type AuditLog struct {
	Base
	UserID       string `gorm:"not null;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
