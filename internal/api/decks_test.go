package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/offdeal/bdr-client-go/internal/types"
)

func TestGenerateDeck_Success(t *testing.T) {
	t.Parallel()
	want := types.Deck{ID: 3, ProspectID: 5, Title: "Acme x OffDeal", Slides: []json.RawMessage{
		json.RawMessage(`{"title":"Personalized Cover","bullets":["Made for Acme"]}`),
	}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/decks/5/generate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()
	got, err := GenerateDeck(context.Background(), srv.Client(), srv.URL, 5)
	if err != nil || got == nil || got.ID != 3 || len(got.Slides) != 1 {
		t.Fatalf("GenerateDeck unexpected: got=%+v err=%v", got, err)
	}
	slides, err := got.SlideContents()
	if err != nil || slides[0].Title != "Personalized Cover" {
		t.Fatalf("slide contents unexpected: %+v err=%v", slides, err)
	}
}

func TestRenderDeck_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/decks/3/render" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.Deck{ID: 3, PDFURL: "https://cdn.example.com/generated/acme.pdf"})
	}))
	defer srv.Close()
	got, err := RenderDeck(context.Background(), srv.Client(), srv.URL, 3)
	if err != nil || got == nil || got.PDFURL == "" {
		t.Fatalf("RenderDeck unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdateDeck_EmptySlidesEncodeAsArray(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/decks/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"slides":[]}` {
			t.Errorf("unexpected body %s", body)
		}
		_ = json.NewEncoder(w).Encode(types.Deck{ID: 42, Slides: []json.RawMessage{}})
	}))
	defer srv.Close()
	got, err := UpdateDeck(context.Background(), srv.Client(), srv.URL, 42, types.UpdateDeckRequest{})
	if err != nil || got == nil || got.ID != 42 {
		t.Fatalf("UpdateDeck unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdateDeck_TitleAndSlides(t *testing.T) {
	t.Parallel()
	title := "Revised pitch"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if string(in["title"]) != `"Revised pitch"` {
			t.Errorf("unexpected title %s", in["title"])
		}
		if _, ok := in["slides"]; !ok {
			t.Error("slides field missing")
		}
		_ = json.NewEncoder(w).Encode(types.Deck{ID: 42, Title: title})
	}))
	defer srv.Close()
	req := types.UpdateDeckRequest{
		Title:  &title,
		Slides: []json.RawMessage{json.RawMessage(`{"title":"Cover","bullets":[]}`)},
	}
	got, err := UpdateDeck(context.Background(), srv.Client(), srv.URL, 42, req)
	if err != nil || got == nil || got.Title != title {
		t.Fatalf("UpdateDeck unexpected: got=%+v err=%v", got, err)
	}
}

func TestDecks_InvalidID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	if _, err := GenerateDeck(ctx, newErrClient(), "http://unused", -1); err == nil {
		t.Fatal("expected id validation error for GenerateDeck")
	}
	if _, err := RenderDeck(ctx, newErrClient(), "http://unused", 0); err == nil {
		t.Fatal("expected id validation error for RenderDeck")
	}
	if _, err := UpdateDeck(ctx, newErrClient(), "http://unused", 0, types.UpdateDeckRequest{}); err == nil {
		t.Fatal("expected id validation error for UpdateDeck")
	}
}

func TestDecks_NonOKStatuses(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("OPENAI_API_KEY is not set"))
	}))
	defer srv.Close()
	_, err := GenerateDeck(context.Background(), srv.Client(), srv.URL, 5)
	if err == nil || err.Error() != "OPENAI_API_KEY is not set" {
		t.Fatalf("unexpected error %v", err)
	}
}
