package models

// Setting is the read-only singleton row holding integration keys for the
// external identity providers. It is provisioned out-of-band; the
// application never writes it.
type Setting struct {
	ID        uint64 `gorm:"primarykey" json:"-"`
	KakaoKey  string `gorm:"column:kakao_key;type:varchar(512)" json:"kakao_key"`
	GoogleKey string `gorm:"column:google_key;type:varchar(512)" json:"google_key"`
}

func (Setting) TableName() string {
	return "setting_table"
}
