package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookie)
	return r
}

func TestCookieCodecRoundTrip(t *testing.T) {
	codec := NewCookieCodec("secret", false)

	rr := httptest.NewRecorder()
	codec.Set(rr, "abc123", time.Now().Add(time.Hour))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	token, ok := codec.Read(requestWithCookie(cookies[0]))
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}

func TestCookieCodecRejectsTampering(t *testing.T) {
	codec := NewCookieCodec("secret", false)

	rr := httptest.NewRecorder()
	codec.Set(rr, "abc123", time.Now().Add(time.Hour))
	cookie := rr.Result().Cookies()[0]

	t.Run("altered token", func(t *testing.T) {
		tampered := *cookie
		tampered.Value = "zzz999" + tampered.Value[6:]
		_, ok := codec.Read(requestWithCookie(&tampered))
		assert.False(t, ok)
	})

	t.Run("different secret", func(t *testing.T) {
		other := NewCookieCodec("other-secret", false)
		_, ok := other.Read(requestWithCookie(cookie))
		assert.False(t, ok)
	})

	t.Run("no signature", func(t *testing.T) {
		bare := &http.Cookie{Name: CookieName, Value: "abc123"}
		_, ok := codec.Read(requestWithCookie(bare))
		assert.False(t, ok)
	})

	t.Run("no cookie", func(t *testing.T) {
		_, ok := codec.Read(httptest.NewRequest("GET", "/", nil))
		assert.False(t, ok)
	})
}

func TestCookieCodecClear(t *testing.T) {
	codec := NewCookieCodec("secret", false)

	rr := httptest.NewRecorder()
	codec.Clear(rr)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestFlash(t *testing.T) {
	rr := httptest.NewRecorder()
	SetFlash(rr, "Please log in to continue.")

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	r := requestWithCookie(cookies[0])
	rr2 := httptest.NewRecorder()
	assert.Equal(t, "Please log in to continue.", PopFlash(rr2, r))

	// popping clears the cookie
	cleared := rr2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Less(t, cleared[0].MaxAge, 0)

	// no flash pending
	assert.Equal(t, "", PopFlash(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)))
}
