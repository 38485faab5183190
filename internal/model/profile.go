package model

// Profile 单例用户资料，onboarding 时创建
type Profile struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Goals string `json:"goals"`
	Photo string `json:"photo,omitempty"` // base64 图片数据
}
