package models

// PromptSettingModel is a single named text setting, such as the system prompt.
type PromptSettingModel struct {
	Key   string `gorm:"column:setting_key;primaryKey;type:varchar(64)"`
	Value string `gorm:"column:setting_value;not null;type:text"`
}

// TableName specifies the table name for GORM
func (PromptSettingModel) TableName() string {
	return "prompt_settings"
}
