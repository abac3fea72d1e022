package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socx/event-announcer/internal/domain/messaging"
	"github.com/socx/event-announcer/internal/infra/config"
)

func testConfig(baseURL string) config.WhatsAppConfig {
	return config.WhatsAppConfig{
		Token:         "test-token",
		PhoneNumberID: "1112223334",
		APIBaseURL:    baseURL,
	}
}

func TestSendTextPostsCloudAPIPayload(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload textPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	err := c.SendText(context.Background(), "+2348012345678", "Hi Ada, it is Mark Obi's birthday today! 🎉")
	require.NoError(t, err)

	assert.Equal(t, "/1112223334/messages", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "whatsapp", gotPayload.MessagingProduct)
	assert.Equal(t, "text", gotPayload.Type)
	assert.Equal(t, "+2348012345678", gotPayload.To)
	assert.Contains(t, gotPayload.Text.Body, "Mark Obi")
}

func TestSendTextRejectsNonE164Phones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the API for an invalid phone")
	}))
	defer srv.Close()
	c := NewClient(testConfig(srv.URL))

	for _, phone := range []string{"", "08012345678", "2348012345678", "+234 801 234", "+abc"} {
		err := c.SendText(context.Background(), phone, "hello")
		var valErr *messaging.ValidationError
		require.ErrorAs(t, err, &valErr, "phone %q", phone)
		assert.Equal(t, "recipient phone", valErr.Field)
	}
}

func TestSendTextRejectsEmptyText(t *testing.T) {
	c := NewClient(testConfig("http://unused"))
	err := c.SendText(context.Background(), "+2348012345678", "")
	var valErr *messaging.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "message text", valErr.Field)
}

func TestSendTextMissingCredentialsIsConfigError(t *testing.T) {
	c := NewClient(config.WhatsAppConfig{APIBaseURL: "http://unused"})
	err := c.SendText(context.Background(), "+2348012345678", "hello")
	var cfgErr *messaging.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "whatsapp", cfgErr.Transport)

	c = NewClient(config.WhatsAppConfig{Token: "t", APIBaseURL: "http://unused"})
	err = c.SendText(context.Background(), "+2348012345678", "hello")
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "sender phone number id", cfgErr.Field)
}

func TestSendTextSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad token"}}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	err := c.SendText(context.Background(), "+2348012345678", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "bad token")
}
