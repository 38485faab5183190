package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 引导与资料模块错误。
var (
	NameTooShort    = Definition{Code: "NAME_TOO_SHORT", Message: "Nama minimal 2 karakter"}
	NameTooLong     = Definition{Code: "NAME_TOO_LONG", Message: "Nama maksimal 30 karakter"}
	PhotoTooLarge   = Definition{Code: "PHOTO_TOO_LARGE", Message: "Foto maksimal 2MB"}
	ProfileNotFound = Definition{Code: "PROFILE_NOT_FOUND", Message: "Profile not found, onboarding required"}
)

// 每日记录模块错误。
var (
	InvalidDate      = Definition{Code: "INVALID_DATE", Message: "Invalid date, expected YYYY-MM-DD"}
	DayOutOfWindow   = Definition{Code: "DAY_OUT_OF_WINDOW", Message: "Day is outside the 30-day Ramadhan window"}
	StartDateMissing = Definition{Code: "START_DATE_MISSING", Message: "Ramadhan start date is not set"}
)

// 祷告时间模块错误。
var (
	PrayerTimesUnavailable = Definition{Code: "PRAYER_TIMES_UNAVAILABLE", Message: "Gagal memuat jadwal sholat"}
	InvalidLocation        = Definition{Code: "INVALID_LOCATION", Message: "Invalid location, expected city name or coordinates"}
)

// AI 助手模块错误。
var (
	ChatLimitReached = Definition{Code: "CHAT_LIMIT_REACHED", Message: "Batas 30 percakapan hari ini tercapai"}
	EmptyMessage     = Definition{Code: "EMPTY_MESSAGE", Message: "Message must not be empty"}
)

// 设置与重置错误。
var (
	ResetPhraseMismatch = Definition{Code: "RESET_PHRASE_MISMATCH", Message: "Reset confirmation phrase mismatch"}
	NoteTooLong         = Definition{Code: "NOTE_TOO_LONG", Message: "Note is too long"}
)

// 通用错误。
var (
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	NameTooShort.Code:           NameTooShort,
	NameTooLong.Code:            NameTooLong,
	PhotoTooLarge.Code:          PhotoTooLarge,
	ProfileNotFound.Code:        ProfileNotFound,
	InvalidDate.Code:            InvalidDate,
	DayOutOfWindow.Code:         DayOutOfWindow,
	StartDateMissing.Code:       StartDateMissing,
	PrayerTimesUnavailable.Code: PrayerTimesUnavailable,
	InvalidLocation.Code:        InvalidLocation,
	ChatLimitReached.Code:       ChatLimitReached,
	EmptyMessage.Code:           EmptyMessage,
	ResetPhraseMismatch.Code:    ResetPhraseMismatch,
	NoteTooLong.Code:            NoteTooLong,
	TooManyRequests.Code:        TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
