package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MyMemoryService is a free HTTP translation backend (5000 chars/day without
// an email address). It cannot auto-detect the source language, so "auto"
// falls back to English as the assumed source.
type MyMemoryService struct {
	email   string
	baseURL string
	client  *http.Client
}

func NewMyMemoryService(email string) *MyMemoryService {
	return &MyMemoryService{
		email:   email,
		baseURL: "https://api.mymemory.translated.net",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == LangAuto {
		sourceLang = LangEnglish
	}

	langPair := fmt.Sprintf("%s|%s", sourceLang, req.TargetLang)

	apiURL := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		s.baseURL,
		url.QueryEscape(req.Text),
		url.QueryEscape(langPair))

	if s.email != "" {
		apiURL += fmt.Sprintf("&de=%s", url.QueryEscape(s.email))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, &ServiceError{Service: s.Name(), Message: "failed to create request", Cause: err}
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, &ServiceError{Service: s.Name(), Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, &ServiceError{Service: s.Name(), Message: "failed to decode response", Cause: err}
	}

	if mymemResp.ResponseStatus != 200 {
		result.Error = fmt.Sprintf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
		return result, &ServiceError{
			Service: s.Name(),
			Message: fmt.Sprintf("API error: %s", mymemResp.ResponseDetails),
		}
	}

	result.TranslatedText = mymemResp.ResponseData.TranslatedText
	result.Confidence = mymemResp.ResponseData.Match

	if result.Confidence < 0 {
		result.Confidence = 0
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	return result, nil
}

func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{LangHindi, LangEnglish}, nil
}
