package render

import (
	"encoding/base64"
	"net/http"

	"github.com/goccy/go-json"
)

const (
	flashCookieName = "flash"
	maxFlashes      = 10
)

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashInfo    FlashLevel = "info"
	FlashError   FlashLevel = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// SetFlash queues a message for the next page, keeping any messages already
// queued on this request.
func SetFlash(w http.ResponseWriter, r *http.Request, level FlashLevel, message string) {
	flashes := append(readFlashes(r), Flash{Level: level, Message: message})
	if len(flashes) > maxFlashes {
		flashes = flashes[len(flashes)-maxFlashes:]
	}
	data, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(data)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Later calls on the same request must see this message too.
	r.AddCookie(&http.Cookie{Name: flashCookieName, Value: value})
}

// PopFlashes returns the queued messages and clears them.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if len(flashes) == 0 {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}

func readFlashes(r *http.Request) []Flash {
	var flashes []Flash
	// the last cookie wins when SetFlash ran earlier on this request
	cookies := r.CookiesNamed(flashCookieName)
	if len(cookies) == 0 {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(cookies[len(cookies)-1].Value)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
