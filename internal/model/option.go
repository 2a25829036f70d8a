package model

const (
	TypeString = "string"
	TypeBool   = "bool"
)

// Option is a persisted key/value configuration item.
type Option struct {
	Key   string `json:"key" gorm:"primaryKey" binding:"required"`
	Value string `json:"value" gorm:"type:text"`
	Type  string `json:"type"`
	// Internal options are written by the program itself, never by the admin console.
	Internal bool `json:"internal"`
}
