package model

// ChatRole 聊天消息角色
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage 单条聊天消息，Time 为展示用的 HH:MM 时间
type ChatMessage struct {
	ID      string   `json:"id"`
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
	Time    string   `json:"time"`
}
