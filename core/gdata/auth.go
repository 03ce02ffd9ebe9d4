package gdata

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	gerrors "gbase-api/core/errors"
)

// ClientLoginURL is Google's username/password token endpoint
const ClientLoginURL = "https://www.google.com/accounts/ClientLogin"

// CaptchaChallenge is returned inside a RequestError body when Google asks
// for a CAPTCHA; ParseCaptchaChallenge extracts it.
type CaptchaChallenge struct {
	Token string
	URL   string
}

// ProgrammaticLogin exchanges the configured email and password for an
// auth token and installs it on the service.
func (s *Service) ProgrammaticLogin(ctx context.Context) error {
	return s.login(ctx, nil)
}

// LoginWithCaptcha retries ClientLogin with the answer to a CAPTCHA challenge
func (s *Service) LoginWithCaptcha(ctx context.Context, challenge CaptchaChallenge, answer string) error {
	return s.login(ctx, map[string]string{
		"logintoken":   challenge.Token,
		"logincaptcha": answer,
	})
}

func (s *Service) login(ctx context.Context, extra map[string]string) error {
	if s.cfg.Email == "" || s.cfg.Password == "" {
		return gerrors.NewError(gerrors.ErrorTypeAuthentication, "email and password are required for ClientLogin")
	}

	form := url.Values{}
	form.Set("Email", s.cfg.Email)
	form.Set("Passwd", s.cfg.Password)
	form.Set("source", s.cfg.Source)
	form.Set("service", s.cfg.Service)
	form.Set("accountType", "HOSTED_OR_GOOGLE")
	for k, v := range extra {
		form.Set(k, v)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	c := s.begin(ctx, http.MethodPost, s.cfg.AuthURL, header)
	resp, err := s.httpClient().Post(ctx, s.cfg.AuthURL, strings.NewReader(form.Encode()), header)
	if err != nil {
		return s.transportError(c, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return s.transportError(c, err)
	}
	s.logResponse(c, resp.StatusCode(), len(body))

	fields := parseKeyValueLines(string(body))

	if resp.StatusCode() != http.StatusOK {
		reason := fields["Error"]
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		s.logger().Warn("ClientLogin rejected", map[string]interface{}{
			"request_id": c.id,
			"email":      s.cfg.Email,
			"status":     resp.StatusCode(),
			"reason":     reason,
		})
		return &gerrors.RequestError{
			StatusCode: resp.StatusCode(),
			Reason:     reason,
			Body:       string(body),
			Method:     http.MethodPost,
			URI:        s.cfg.AuthURL,
		}
	}

	token := fields["Auth"]
	if token == "" {
		return gerrors.NewError(gerrors.ErrorTypeAuthentication, "ClientLogin response carried no Auth token")
	}

	s.SetAuthToken(token)
	s.logger().Info("ClientLogin succeeded", map[string]interface{}{
		"email":   s.cfg.Email,
		"service": s.cfg.Service,
	})
	return nil
}

// ParseCaptchaChallenge extracts a CAPTCHA challenge from a ClientLogin
// RequestError body. ok is false when the body is not a CAPTCHA response.
func ParseCaptchaChallenge(body string) (CaptchaChallenge, bool) {
	fields := parseKeyValueLines(body)
	if fields["Error"] != "CaptchaRequired" {
		return CaptchaChallenge{}, false
	}
	challenge := CaptchaChallenge{Token: fields["CaptchaToken"], URL: fields["CaptchaUrl"]}
	if challenge.URL != "" && !strings.HasPrefix(challenge.URL, "http") {
		challenge.URL = "https://www.google.com/accounts/" + challenge.URL
	}
	return challenge, true
}

// parseKeyValueLines reads "Key=Value" lines as returned by ClientLogin
func parseKeyValueLines(body string) map[string]string {
	out := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		out[key] = value
	}
	return out
}
