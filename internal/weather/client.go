package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Report is the subset of the wttr.in payload the tool prints.
type Report struct {
	City        string
	TempC       int
	FeelsLikeC  int
	Condition   string
	WindKmph    int
	HumidityPct int
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		FeelsLikeC  string `json:"FeelsLikeC"`
		WindKmph    string `json:"windspeedKmph"`
		Humidity    string `json:"humidity"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

func (c *Client) Current(ctx context.Context, city string) (Report, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(city) + "?format=j1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Report{}, fmt.Errorf("weather lookup failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded wttrResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Report{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(decoded.CurrentCondition) == 0 {
		return Report{}, fmt.Errorf("weather response has no current conditions for %s", city)
	}

	current := decoded.CurrentCondition[0]
	report := Report{
		City:        city,
		TempC:       atoiLoose(current.TempC),
		FeelsLikeC:  atoiLoose(current.FeelsLikeC),
		WindKmph:    atoiLoose(current.WindKmph),
		HumidityPct: atoiLoose(current.Humidity),
	}
	if len(current.WeatherDesc) > 0 {
		report.Condition = strings.TrimSpace(current.WeatherDesc[0].Value)
	}
	return report, nil
}

func atoiLoose(raw string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(raw))
	return n
}
