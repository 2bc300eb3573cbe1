package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/type" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"name":"fire","url":"/type/10"},{"name":"water","url":"/type/11"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, server.Client())
	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != "fire" || categories[1].ID != "water" {
		t.Fatalf("unexpected categories: %#v", categories)
	}
}

func TestListMembers_UnknownCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, server.Client())
	_, err := client.ListMembers(context.Background(), "plasma")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestListMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/type/fire" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"pokemon":[{"pokemon":{"name":"charmander","url":"/pokemon/4"}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, server.Client())
	members, err := client.ListMembers(context.Background(), "fire")
	if err != nil {
		t.Fatalf("ListMembers returned error: %v", err)
	}
	if len(members) != 1 || members[0].DetailRef != "charmander" {
		t.Fatalf("unexpected members: %#v", members)
	}
}

func TestGetDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/charmander" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": 4,
			"name": "charmander",
			"height": 6,
			"weight": 85,
			"sprites": {"front_default": "https://img.example/4.png"},
			"types": [{"type": {"name": "fire", "url": ""}}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, server.Client())
	detail, err := client.GetDetail(context.Background(), "charmander")
	if err != nil {
		t.Fatalf("GetDetail returned error: %v", err)
	}
	if detail.ID != 4 || detail.Name != "charmander" {
		t.Fatalf("unexpected detail: %#v", detail)
	}
	if detail.ImageURL != "https://img.example/4.png" {
		t.Fatalf("unexpected image URL: %s", detail.ImageURL)
	}
	if len(detail.Types) != 1 || detail.Types[0] != "fire" {
		t.Fatalf("unexpected types: %#v", detail.Types)
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, server.Client())
	_, err := client.GetDetail(context.Background(), "missingno")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDescription_LanguagePreferenceOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"flavor_text_entries":[
			{"flavor_text":"Texte français.","language":{"name":"fr","url":""}},
			{"flavor_text":"English text.","language":{"name":"en","url":""}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, []string{"de", "en", "fr"}, server.Client())
	description, err := client.GetDescription(context.Background(), "charmander")
	if err != nil {
		t.Fatalf("GetDescription returned error: %v", err)
	}
	if description.Language != "en" || description.Text != "English text." {
		t.Fatalf("unexpected description: %#v", description)
	}
}

func TestGetDescription_NoPreferredLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"flavor_text_entries":[{"flavor_text":"こうら","language":{"name":"ja","url":""}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, []string{"en"}, server.Client())
	_, err := client.GetDescription(context.Background(), "squirtle")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, server.Client())
	_, err := client.ListCategories(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil, nil)
	_, err := client.ListCategories(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
