package dto

// ========== 引导与资料 ==========

// OnboardRequest 首次进入时的建档请求
type OnboardRequest struct {
	Name string `json:"name"`
}

// UpdateProfileRequest 资料编辑请求，nil 字段保持不变
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Bio   *string `json:"bio"`
	Goals *string `json:"goals"`
	Photo *string `json:"photo"`
}

// ========== 每日记录 ==========

// ReflectionUpdate 反思字段更新，nil 保持不变
type ReflectionUpdate struct {
	Gratitude   *string `json:"gratitude"`
	Improvement *string `json:"improvement"`
	Highlight   *string `json:"highlight"`
}

// UpdateDayRequest 每日记录更新请求。
// 调用方只传变化的字段，service 层负责与已存记录合并后整体覆盖写入。
type UpdateDayRequest struct {
	Fasted         *bool             `json:"fasted"`
	Prayers        map[string]bool   `json:"prayers"` // 只合并出现的 key
	NightPrayer    *bool             `json:"night_prayer"`
	ScriptureDay   *int              `json:"scripture_day"`
	ScriptureNight *int              `json:"scripture_night"`
	Reflection     *ReflectionUpdate `json:"reflection"`
	Completed      *bool             `json:"completed"` // true 时盖上 completed_at
}

// ========== 聊天 ==========

// ChatRequest 发送一条聊天消息
type ChatRequest struct {
	Message string `json:"message"`
}

// ========== 设置 ==========

// UpdateSettingsRequest 设置更新请求，nil 字段保持不变
type UpdateSettingsRequest struct {
	DarkMode     *bool   `json:"dark_mode"`
	LocationMode *string `json:"location_mode"` // auto, manual
	City         *string `json:"city"`
}

// UpdateNoteRequest 全局笔记更新
type UpdateNoteRequest struct {
	Text string `json:"text"`
}

// ResetRequest 全量数据重置，需要输入确认短语
type ResetRequest struct {
	Confirmation string `json:"confirmation"`
}
