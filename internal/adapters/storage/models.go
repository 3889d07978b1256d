package storage

import "time"

// Credential keys. Both are written and cleared together.
const (
	credentialToken = "token"
	credentialUser  = "user"
)

// CredentialModel is a key/value row of the credentials table
type CredentialModel struct {
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CredentialModel) TableName() string { return "credentials" }

// ActiveTimerModel is the running timer of one user
type ActiveTimerModel struct {
	Billable     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	Degraded     bool   `gorm:"not null;default:false"`
	Description  string `gorm:"not null;default:''"`
	ProjectID    string `gorm:"not null"`
	RemoteID     string `gorm:"not null;default:'';index:idx_active_timer_remote"`
	StartedAt    time.Time
	State        string `gorm:"not null;default:'running';check:state IN ('idle','pending','running','stopping')"`
	TaskID       string `gorm:"not null"`
	TrackingType string `gorm:"not null;default:'hourly'"`
	UpdatedAt    time.Time
	UserID       string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (ActiveTimerModel) TableName() string { return "active_timers" }

// TimeEntryModel is one cached entry. The same entry may be cached under
// several scopes (own entries, all entries).
type TimeEntryModel struct {
	Billable      bool       `gorm:"not null;default:false"`
	Description   string     `gorm:"not null;default:''"`
	Duration      int        `gorm:"not null;default:0"`
	EndTime       *time.Time
	ID            string     `gorm:"primaryKey"`
	IsManualEntry bool       `gorm:"not null;default:false"`
	OwnerID       string     `gorm:"not null;default:'';index:idx_entry_owner"`
	OwnerName     string     `gorm:"not null;default:''"`
	ProjectID     string     `gorm:"not null;default:''"`
	ProjectName   string     `gorm:"not null;default:''"`
	Scope         string     `gorm:"primaryKey"`
	StartTime     *time.Time `gorm:"index:idx_entry_start"`
	Status        string     `gorm:"not null;default:''"`
	TaskID        string     `gorm:"not null;default:''"`
	TaskName      string     `gorm:"not null;default:''"`
	TrackingType  string     `gorm:"not null;default:''"`
	Unsynced      bool       `gorm:"not null;default:false;index:idx_entry_unsynced"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (TimeEntryModel) TableName() string { return "time_entries" }
