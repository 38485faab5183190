package assistant

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"RamadhanLantern/internal/model"
	"RamadhanLantern/internal/tracker"
	"RamadhanLantern/pkg/errors"
	"RamadhanLantern/pkg/logger"
	"RamadhanLantern/pkg/snowflake"
	"RamadhanLantern/storage/kv"
	"RamadhanLantern/utils"
)

const (
	historyKey          = "ramadhan_ai_chat_history"
	usageKeyPrefix      = "ramadhan_ai_usage_"
	motivationKeyPrefix = "ramadhan_motivation_cache_"
	profileKey          = "ramadhan_profile"
)

// 上游不可用时的兜底回复，仍然计入当日额度
const (
	fallbackRefused      = "Mohon maaf, Lantern sedang tidak dapat menjawab saat ini. Semoga Allah mudahkan ibadahmu hari ini 🌙"
	fallbackDisconnected = "Koneksi terputus. Semoga Allah selalu membimbing langkahmu di bulan Ramadhan yang mulia ini 🌙"
)

// 每日激励语的兜底语录，按日期缓存后当天保持不变
var motivationFallbacks = []string{
	"\"Sesungguhnya Allah tidak menyia-nyiakan pahala orang-orang yang berbuat baik.\" (QS 9:120)",
	"\"Dan bersabarlah kamu, sesungguhnya Allah beserta orang-orang yang sabar.\" (QS 8:46)",
	"\"Barangsiapa yang bertakwa kepada Allah, niscaya Dia akan mengadakan jalan keluar baginya.\" (QS 65:2)",
}

// ChatResult 一次对话的回复及额度信息
type ChatResult struct {
	Reply     model.ChatMessage
	Used      int
	Remaining int
}

// Service 管理与助手的对话、历史和每日额度
type Service struct {
	store      kv.Store
	client     ReplyClient
	records    *tracker.Records
	indexer    *tracker.Indexer
	dailyLimit int
	historyMax int
	now        func() time.Time
}

func NewService(store kv.Store, client ReplyClient, records *tracker.Records, indexer *tracker.Indexer, dailyLimit, historyMax int) *Service {
	return &Service{
		store:      store,
		client:     client,
		records:    records,
		indexer:    indexer,
		dailyLimit: dailyLimit,
		historyMax: historyMax,
		now:        time.Now,
	}
}

// Chat 发送一条消息并返回助手回复。
// 上游失败时返回兜底回复而不是错误，失败的调用同样消耗额度。
func (s *Service) Chat(ctx context.Context, message string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatResult{}, errors.EmptyMessage
	}

	now := s.now()
	today := utils.DateKey(now)

	used := s.usageOn(ctx, today)
	if used >= s.dailyLimit {
		return ChatResult{}, errors.ChatLimitReached
	}

	reply, err := s.client.Reply(ctx, s.contextPrefix(ctx, today)+message)
	if err != nil {
		logger.Logger.Warn("Assistant reply failed, using fallback", zap.Error(err))
		if isTransportError(err) {
			reply = fallbackDisconnected
		} else {
			reply = fallbackRefused
		}
	}

	used++
	if err := s.store.Set(ctx, usageKeyPrefix+today, strconv.Itoa(used)); err != nil {
		logger.Logger.Warn("Failed to persist assistant usage", zap.Error(err))
	}

	clock := now.Format("15:04")
	userMsg := model.ChatMessage{ID: s.newID(), Role: model.ChatRoleUser, Content: message, Time: clock}
	replyMsg := model.ChatMessage{ID: s.newID(), Role: model.ChatRoleAssistant, Content: reply, Time: clock}

	history, _ := s.loadHistory(ctx)
	history = append(history, userMsg, replyMsg)
	if len(history) > s.historyMax {
		history = history[len(history)-s.historyMax:]
	}
	if err := s.saveHistory(ctx, history); err != nil {
		logger.Logger.Warn("Failed to persist chat history", zap.Error(err))
	}

	return ChatResult{
		Reply:     replyMsg,
		Used:      used,
		Remaining: s.dailyLimit - used,
	}, nil
}

// History 返回聊天记录。历史为空时返回一条按时段生成的开场白，
// 开场白不落存储，刷新后随时间变化。
func (s *Service) History(ctx context.Context) ([]model.ChatMessage, int, error) {
	today := utils.DateKey(s.now())
	used := s.usageOn(ctx, today)

	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, used, err
	}
	if len(history) > 0 {
		return history, used, nil
	}

	greeting := model.ChatMessage{
		ID:      s.newID(),
		Role:    model.ChatRoleAssistant,
		Content: timeGreeting(s.profileName(ctx), s.now().Hour()),
		Time:    s.now().Format("15:04"),
	}
	return []model.ChatMessage{greeting}, used, nil
}

// ClearHistory 清空聊天记录，额度不受影响
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.store.Remove(ctx, historyKey)
}

// Motivation 返回今日激励语，同一天内保持稳定
func (s *Service) Motivation(ctx context.Context) (string, error) {
	key := motivationKeyPrefix + utils.DateKey(s.now())

	if cached, ok, err := s.store.Get(ctx, key); err == nil && ok && cached != "" {
		return cached, nil
	}

	quote := motivationFallbacks[rand.Intn(len(motivationFallbacks))]
	if err := s.store.Set(ctx, key, quote); err != nil {
		return quote, err
	}
	return quote, nil
}

// UsageToday 返回今日已用和剩余额度
func (s *Service) UsageToday(ctx context.Context) (used, remaining int) {
	used = s.usageOn(ctx, utils.DateKey(s.now()))
	remaining = s.dailyLimit - used
	if remaining < 0 {
		remaining = 0
	}
	return used, remaining
}

// contextPrefix 把今日功课摘要拼进提示词，让回复贴近用户当天状态
func (s *Service) contextPrefix(ctx context.Context, today string) string {
	record := s.records.Load(ctx, today)
	progress := tracker.Score(record)

	var dayPart string
	if day, ok := s.indexer.DayForDate(ctx, today); ok {
		dayPart = fmt.Sprintf("Ramadhan hari ke-%d. ", day)
	}

	return fmt.Sprintf("[Konteks: %sUser menyelesaikan %d dari 5 sholat wajib dan membaca %d halaman Al-Qur'an hari ini. Progress ibadah %d%%.] ",
		dayPart, record.PrayersDone(), record.ScriptureDay, progress)
}

func (s *Service) usageOn(ctx context.Context, date string) int {
	raw, ok, err := s.store.Get(ctx, usageKeyPrefix+date)
	if err != nil || !ok {
		return 0
	}
	used, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || used < 0 {
		return 0
	}
	return used
}

func (s *Service) loadHistory(ctx context.Context) ([]model.ChatMessage, error) {
	raw, ok, err := s.store.Get(ctx, historyKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var history []model.ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		// 损坏的历史当作空历史
		logger.Logger.Warn("Corrupt chat history dropped", zap.Error(err))
		return nil, nil
	}
	return history, nil
}

func (s *Service) saveHistory(ctx context.Context, history []model.ChatMessage) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal chat history: %w", err)
	}
	return s.store.Set(ctx, historyKey, string(data))
}

func (s *Service) profileName(ctx context.Context) string {
	raw, ok, err := s.store.Get(ctx, profileKey)
	if err != nil || !ok {
		return ""
	}
	var profile model.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return ""
	}
	return profile.Name
}

func (s *Service) newID() string {
	id, err := snowflake.NextID()
	if err != nil {
		return uuid.NewString()
	}
	return strconv.FormatInt(id, 10)
}

func isTransportError(err error) bool {
	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}
	return stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled)
}

// timeGreeting 按当前时段生成开场白，时段边界沿用整点小时
func timeGreeting(name string, hour int) string {
	displayName := name
	if displayName == "" {
		displayName = "Saudaraku"
	}

	switch {
	case hour >= 1 && hour < 5:
		return fmt.Sprintf("Assalamu'alaikum, %s 🌙\n\nMasih terjaga di waktu sahur? Alhamdulillah, ini waktu yang penuh berkah. Jangan lupa makan yang cukup agar kuat berpuasa seharian. Ada yang ingin kamu ceritakan atau tanyakan?", displayName)
	case hour >= 5 && hour < 11:
		return fmt.Sprintf("Assalamu'alaikum, %s 🌤️\n\nSelamat pagi! Semoga Subuhmu tadi berjalan khusyuk. Semangat menjalani puasa hari ini. Ada yang ingin kamu ceritakan di pagi yang penuh berkah ini?", displayName)
	case hour >= 11 && hour < 16:
		return fmt.Sprintf("Assalamu'alaikum, %s ☀️\n\nBagaimana puasanya? Semoga tetap kuat dan istiqomah. Tinggal beberapa jam lagi menuju buka puasa. Ada yang ingin kamu tanyakan atau ceritakan?", displayName)
	case hour >= 16 && hour < 19:
		return fmt.Sprintf("Assalamu'alaikum, %s 🌅\n\nSebentar lagi waktu berbuka! Semoga segala ibadahmu hari ini diterima Allah SWT. Sudah siapkan takjil belum? Ada yang ingin kamu ceritakan?", displayName)
	case hour >= 19 && hour < 21:
		return fmt.Sprintf("Assalamu'alaikum, %s 🌙\n\nAlhamdulillah, sudah berbuka! Setelah ini jangan lupa sholat Isya dan Tarawih ya. Ada yang ingin kamu ceritakan?", displayName)
	default:
		return fmt.Sprintf("Assalamu'alaikum, %s ✨\n\nMalam Ramadhan yang penuh berkah! Sudah sholat Tarawih malam ini? Ini waktu terbaik untuk bermunajat. Ada yang ingin kamu ceritakan atau renungkan malam ini?", displayName)
	}
}
