// Package gemini generates bilingual teaching scripts via the Gemini HTTP
// API. Parsing is deliberately lenient: malformed entries are skipped and
// overlong results truncated, failing only when nothing usable remains.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jarair9/translation-video-generator/internal/types"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	requestTimeout = 60 * time.Second
)

type Adapter struct {
	key     string
	model   string
	baseURL string
	client  *http.Client
}

func New(apiKey, model string) *Adapter {
	if model == "" {
		model = defaultModel
	}
	return &Adapter{
		key:     apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

func (a *Adapter) Generate(ctx context.Context, topic, level string, pairs int, kind string) ([]types.ScriptSegment, error) {
	if pairs <= 0 {
		return nil, fmt.Errorf("pairs must be > 0")
	}
	if a.key == "" {
		return nil, errors.New("GOOGLE_API_KEY is required (set it in .env or the environment)")
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": buildPrompt(topic, level, pairs, kind)}}},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.baseURL, a.model, a.key)

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("gemini timeout after %s (model=%s)", requestTimeout, a.model)
		}
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("gemini status %d and read body failed: %v", resp.StatusCode, readErr)
		}
		return nil, fmt.Errorf("gemini status %d: %s", resp.StatusCode, truncate(string(rb), 400))
	}

	var raw struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	return parseScript(raw.Candidates[0].Content.Parts[0].Text, pairs)
}

// parseScript extracts usable {en, ur} pairs from model output: strips
// markdown fences, drops entries missing either language, and truncates to
// the requested count.
func parseScript(text string, pairs int) ([]types.ScriptSegment, error) {
	clean := stripFences(text)

	var items []struct {
		EN string `json:"en"`
		UR string `json:"ur"`
	}
	if err := json.Unmarshal([]byte(clean), &items); err != nil {
		return nil, fmt.Errorf("gemini response was not a JSON array: %w\nraw: %s", err, truncate(clean, 400))
	}

	out := make([]types.ScriptSegment, 0, len(items))
	for _, it := range items {
		en := strings.TrimSpace(it.EN)
		ur := strings.TrimSpace(it.UR)
		if en == "" || ur == "" {
			continue
		}
		out = append(out, types.ScriptSegment{EN: en, UR: ur})
	}
	if len(out) == 0 {
		return nil, errors.New("gemini returned no usable en/ur pairs")
	}
	if len(out) > pairs {
		out = out[:pairs]
	}
	return out, nil
}

func buildPrompt(topic, level string, pairs int, kind string) string {
	var instruction string
	if kind == "words" {
		instruction = fmt.Sprintf(`Generate exactly %d individual vocabulary words as a JSON array.
Each item must be an object with these keys only:
  - en: a single English word
  - ur: the equivalent Urdu word (using correct Urdu script)

Constraints:
- Choose useful, common vocabulary words related to the topic.
- Use single words only (no phrases or sentences).
- Match the difficulty level appropriately.
- Do NOT include transliteration.
- Return ONLY valid JSON, no explanations, no markdown, no comments.

Example format:
[
  {"en": "hello", "ur": "ہیلو"},
  {"en": "water", "ur": "پانی"}
]`, pairs)
	} else {
		instruction = fmt.Sprintf(`Generate exactly %d short, simple example sentences as a JSON array.
Each item must be an object with these keys only:
  - en: the English sentence
  - ur: the equivalent natural Urdu sentence (using correct Urdu script)

Constraints:
- Use everyday, clear language that matches the level.
- Create complete, meaningful sentences.
- Do NOT include transliteration.
- Return ONLY valid JSON, no explanations, no markdown, no comments.

Example format:
[
  {"en": "I am learning Urdu", "ur": "میں اردو سیکھ رہا ہوں"},
  {"en": "This is beautiful", "ur": "یہ خوبصورت ہے"}
]`, pairs)
	}

	return fmt.Sprintf(`You are helping to create a bilingual English-Urdu teaching video script.

Topic: %s
Level: %s learner.
Script Type: %s

%s`, topic, level, kind, instruction)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
