package prayertimes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"RamadhanLantern/config"
	"RamadhanLantern/internal/model"
	"RamadhanLantern/utils"
)

// Location 查询位置，City 非空时按城市查询，否则按坐标
type Location struct {
	City string
	Lat  float64
	Lng  float64
}

// Key 返回用于缓存分区的位置标识。
// 坐标保留两位小数，同一街区的微小漂移落进同一个缓存桶。
func (l Location) Key() string {
	if l.City != "" {
		return l.City
	}
	return fmt.Sprintf("%.2f_%.2f", l.Lat, l.Lng)
}

// Fetcher 拉取指定日期和位置的祷告时间表
type Fetcher interface {
	Fetch(ctx context.Context, date string, loc Location) (model.PrayerData, error)
}

// AladhanClient 调用 Aladhan 公共 API 的 Fetcher 实现
type AladhanClient struct {
	baseURL    string
	method     int
	country    string
	httpClient *http.Client
}

func NewAladhanClient() *AladhanClient {
	return &AladhanClient{
		baseURL: config.Cfg.PrayerAPIBaseURL,
		method:  config.Cfg.PrayerAPIMethod,
		country: config.Cfg.PrayerDefaultCountry,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Cfg.PrayerAPITimeoutSecs) * time.Second,
		},
	}
}

// aladhan 返回结构，只取需要的字段
type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings model.TimingSet `json:"timings"`
		Date    struct {
			Hijri model.HijriDate `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}

func (c *AladhanClient) Fetch(ctx context.Context, date string, loc Location) (model.PrayerData, error) {
	day, err := utils.ParseDateKey(date)
	if err != nil {
		return model.PrayerData{}, err
	}

	// Aladhan 的路径日期格式是 DD-MM-YYYY
	pathDate := day.Format("02-01-2006")

	var endpoint string
	query := url.Values{}
	query.Set("method", strconv.Itoa(c.method))

	if loc.City != "" {
		endpoint = c.baseURL + "/timingsByCity/" + pathDate
		query.Set("city", loc.City)
		query.Set("country", c.country)
	} else {
		endpoint = c.baseURL + "/timings/" + pathDate
		query.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
		query.Set("longitude", strconv.FormatFloat(loc.Lng, 'f', -1, 64))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return model.PrayerData{}, fmt.Errorf("failed to create prayer times request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PrayerData{}, fmt.Errorf("prayer times request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.PrayerData{}, fmt.Errorf("failed to read prayer times response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.PrayerData{}, fmt.Errorf("prayer times API returned status %d", resp.StatusCode)
	}

	var parsed aladhanResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.PrayerData{}, fmt.Errorf("failed to parse prayer times response: %w", err)
	}
	if parsed.Code != http.StatusOK {
		return model.PrayerData{}, fmt.Errorf("prayer times API returned code %d", parsed.Code)
	}
	if parsed.Data.Timings.Fajr == "" {
		return model.PrayerData{}, fmt.Errorf("prayer times response has no timings")
	}

	return model.PrayerData{
		Timings: parsed.Data.Timings,
		Hijri:   parsed.Data.Date.Hijri,
	}, nil
}
