package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Failure kinds surfaced to callers. Wrapped errors carry the request
// context; match with errors.Is.
var (
	ErrUnavailable     = errors.New("catalog unavailable")
	ErrNotFound        = errors.New("record not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// Category is one entry of the top-level category index.
type Category struct {
	ID    string
	Label string
}

// Member is one creature belonging to a category. DetailRef is the key
// accepted by GetDetail and GetDescription.
type Member struct {
	Name      string
	DetailRef string
}

// Detail is the full record for one creature.
type Detail struct {
	ID       int
	Name     string
	ImageURL string
	Types    []string
	Height   int
	Weight   int
}

// Description is the flavor text for one creature, in the first language
// from the client's preference order that the catalog carries.
type Description struct {
	Text     string
	Language string
}

type Client struct {
	baseURL string
	langs   []string
	http    *http.Client
}

func NewClient(baseURL string, langs []string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		langs:   langs,
		http:    httpClient,
	}
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type categoryIndexResponse struct {
	Results []namedResource `json:"results"`
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var index categoryIndexResponse
	if err := c.getJSON(ctx, "/type", "list categories", ErrNotFound, &index); err != nil {
		return nil, err
	}
	categories := make([]Category, 0, len(index.Results))
	for _, r := range index.Results {
		categories = append(categories, Category{ID: r.Name, Label: r.Name})
	}
	return categories, nil
}

type categoryMembersResponse struct {
	Pokemon []struct {
		Pokemon namedResource `json:"pokemon"`
	} `json:"pokemon"`
}

func (c *Client) ListMembers(ctx context.Context, categoryID string) ([]Member, error) {
	var resp categoryMembersResponse
	if err := c.getJSON(ctx, "/type/"+categoryID, "list members", ErrUnknownCategory, &resp); err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(resp.Pokemon))
	for _, p := range resp.Pokemon {
		members = append(members, Member{Name: p.Pokemon.Name, DetailRef: p.Pokemon.Name})
	}
	return members, nil
}

type detailResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Type namedResource `json:"type"`
	} `json:"types"`
}

func (c *Client) GetDetail(ctx context.Context, ref string) (Detail, error) {
	var resp detailResponse
	if err := c.getJSON(ctx, "/pokemon/"+ref, "get detail", ErrNotFound, &resp); err != nil {
		return Detail{}, err
	}
	types := make([]string, 0, len(resp.Types))
	for _, t := range resp.Types {
		types = append(types, t.Type.Name)
	}
	return Detail{
		ID:       resp.ID,
		Name:     resp.Name,
		ImageURL: resp.Sprites.FrontDefault,
		Types:    types,
		Height:   resp.Height,
		Weight:   resp.Weight,
	}, nil
}

type speciesResponse struct {
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
}

func (c *Client) GetDescription(ctx context.Context, ref string) (Description, error) {
	var resp speciesResponse
	if err := c.getJSON(ctx, "/pokemon-species/"+ref, "get description", ErrNotFound, &resp); err != nil {
		return Description{}, err
	}
	for _, lang := range c.langs {
		for _, entry := range resp.FlavorTextEntries {
			if entry.Language.Name == lang {
				return Description{Text: entry.FlavorText, Language: lang}, nil
			}
		}
	}
	return Description{}, fmt.Errorf("get description %s: no text in preferred languages: %w", ref, ErrNotFound)
}

func (c *Client) getJSON(ctx context.Context, path, operation string, missing error, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %v: %w", operation, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", operation, path, missing)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s failed with status %d: %s: %w", operation, resp.StatusCode, strings.TrimSpace(string(body)), ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %v: %w", operation, err, ErrUnavailable)
	}
	return nil
}
