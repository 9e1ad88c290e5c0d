package render

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlash_SurvivesOneRedirect(t *testing.T) {
	// request that queues two messages and redirects
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/recipe/soup/favorite/", nil)
	SetFlash(w, r, FlashSuccess, "Soup added to favorites!")
	SetFlash(w, r, FlashInfo, "Second")

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no flash cookie set")
	}
	last := cookies[len(cookies)-1]

	// the following page pops them
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/recipe/soup/", nil)
	r.AddCookie(last)
	got := PopFlashes(w, r)
	if len(got) != 2 || got[0].Message != "Soup added to favorites!" || got[1].Level != FlashInfo {
		t.Fatalf("PopFlashes() = %+v", got)
	}

	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("flash cookie not cleared: %+v", cleared)
	}
}

func TestPopFlashes_Garbage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%"})

	if got := PopFlashes(w, r); got != nil {
		t.Errorf("PopFlashes() = %+v, want nil", got)
	}
}
