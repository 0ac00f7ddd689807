package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// var so tests can point it at a local stub.
var googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleUser is the identity extracted from a verified Google ID token.
type GoogleUser struct {
	GoogleID string
	Email    string
	Name     string
}

var googleHTTPClient = &http.Client{Timeout: 10 * time.Second}

// VerifyGoogleIDToken checks an ID token against Google's tokeninfo
// endpoint and returns the caller's identity. When clientID is non-empty
// the token audience must match it.
func VerifyGoogleIDToken(ctx context.Context, idToken, clientID string) (*GoogleUser, error) {
	if idToken == "" {
		return nil, errors.New("empty id token")
	}

	reqURL := googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := googleHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid google id token")
	}

	var info struct {
		Sub           string `json:"sub"`
		Aud           string `json:"aud"`
		Email         string `json:"email"`
		EmailVerified string `json:"email_verified"`
		Name          string `json:"name"`
		Exp           string `json:"exp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode tokeninfo response: %w", err)
	}

	if info.Sub == "" || info.Email == "" {
		return nil, errors.New("token missing subject or email")
	}
	if clientID != "" && info.Aud != clientID {
		return nil, errors.New("token audience mismatch")
	}
	if exp, err := strconv.ParseInt(info.Exp, 10, 64); err == nil && exp < time.Now().Unix() {
		return nil, errors.New("google id token expired")
	}

	name := info.Name
	if name == "" {
		name = info.Email
	}

	return &GoogleUser{
		GoogleID: info.Sub,
		Email:    info.Email,
		Name:     name,
	}, nil
}
