package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/common"
)

// HTTPService talks JSON over HTTP to the identity & data service.
//
// It keeps the current access/refresh token pair. When a request fails with
// 401 "token expired", the access token is refreshed once and the request is
// retried with the new token.
type HTTPService struct {
	baseURL string
	hc      *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// NewHTTPService constructs a service client for the given base URL,
// e.g. "http://127.0.0.1:8080".
func NewHTTPService(baseURL string, timeout time.Duration) *HTTPService {
	return &HTTPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (s *HTTPService) Close() error {
	s.hc.CloseIdleConnections()
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type tokenResponse struct {
	Access  string           `json:"access"`
	Refresh string           `json:"refresh"`
	User    *models.Identity `json:"user"`
}

type userResponse struct {
	User *models.Identity `json:"user"`
}

func (s *HTTPService) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *HTTPService) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// roundTrip performs one request, refreshing the access token and retrying
// once if the server reports an expired token.
func (s *HTTPService) roundTrip(ctx context.Context, method, path, contentType string, payload []byte, out any) error {
	status, body, err := s.send(ctx, method, path, contentType, payload)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && strings.Contains(errMessage(body), common.ErrTokenExpired.Error()) {
		if refreshErr := s.refresh(ctx); refreshErr != nil {
			return ErrUnauthorized
		}
		status, body, err = s.send(ctx, method, path, contentType, payload)
		if err != nil {
			return err
		}
	}

	switch {
	case status >= 200 && status < 300:
		if out != nil && len(body) > 0 {
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status >= 500:
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %s", ErrRejected, errMessage(body))
	}
}

func (s *HTTPService) send(ctx context.Context, method, path, contentType string, payload []byte) (int, []byte, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rd)
	if err != nil {
		return 0, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if access, _ := s.tokens(); access != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+access)
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp.StatusCode, body, nil
}

func (s *HTTPService) refresh(ctx context.Context) error {
	_, refresh := s.tokens()
	if refresh == "" {
		return ErrUnauthorized
	}
	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return err
	}
	status, body, err := s.send(ctx, http.MethodPost, "/api/v1/auth/refresh", "application/json", payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return ErrUnauthorized
	}
	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return err
	}
	s.setTokens(tr.Access, tr.Refresh)
	return nil
}

func errMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return strings.TrimSpace(string(body))
	}
	return er.Error
}

func (s *HTTPService) postJSON(ctx context.Context, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}
	return s.roundTrip(ctx, http.MethodPost, path, "application/json", payload, out)
}

func (s *HTTPService) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*models.Identity, error) {
	in := map[string]any{"email": email, "password": password, "metadata": metadata}
	var out userResponse
	if err := s.postJSON(ctx, "/api/v1/auth/register", in, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (s *HTTPService) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	in := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := s.postJSON(ctx, "/api/v1/auth/login", in, &out); err != nil {
		return nil, err
	}
	s.setTokens(out.Access, out.Refresh)
	return out.User, nil
}

func (s *HTTPService) SignOut(ctx context.Context) error {
	_, refresh := s.tokens()
	err := s.postJSON(ctx, "/api/v1/auth/logout", map[string]string{"refresh": refresh}, nil)
	// Local tokens are dropped even if the server call failed; the session
	// is cleared on this client regardless.
	s.setTokens("", "")
	return err
}

func (s *HTTPService) CurrentIdentity(ctx context.Context) (*models.Identity, error) {
	var out userResponse
	if err := s.roundTrip(ctx, http.MethodGet, "/api/v1/auth/me", "", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (s *HTTPService) UpdateMetadata(ctx context.Context, metadata map[string]string) (*models.Identity, error) {
	payload, err := json.Marshal(map[string]any{"metadata": metadata})
	if err != nil {
		return nil, err
	}
	var out userResponse
	if err := s.roundTrip(ctx, http.MethodPatch, "/api/v1/auth/me/metadata", "application/json", payload, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (s *HTTPService) RequestCode(ctx context.Context, channel Channel, target string) error {
	in := map[string]string{"channel": string(channel), "target": target}
	return s.postJSON(ctx, "/api/v1/verification/request", in, nil)
}

func (s *HTTPService) ConfirmCode(ctx context.Context, channel Channel, target, code string) error {
	in := map[string]string{"channel": string(channel), "target": target, "code": code}
	return s.postJSON(ctx, "/api/v1/verification/confirm", in, nil)
}

func (s *HTTPService) ListJobs(ctx context.Context) ([]*models.Job, error) {
	var out []*models.Job
	if err := s.roundTrip(ctx, http.MethodGet, "/api/v1/jobs", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	var out []*models.Course
	if err := s.roundTrip(ctx, http.MethodGet, "/api/v1/courses", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPService) Apply(ctx context.Context, jobID string) error {
	return s.postJSON(ctx, "/api/v1/applications", map[string]string{"job_id": jobID}, nil)
}

func (s *HTTPService) ListApplications(ctx context.Context) ([]*models.Application, error) {
	var out []*models.Application
	if err := s.roundTrip(ctx, http.MethodGet, "/api/v1/applications", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPService) Enroll(ctx context.Context, courseID string) error {
	return s.postJSON(ctx, "/api/v1/enrollments", map[string]string{"course_id": courseID}, nil)
}

func (s *HTTPService) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	if err := s.roundTrip(ctx, http.MethodGet, "/api/v1/enrollments", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPService) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := s.roundTrip(ctx, http.MethodPost, "/api/v1/storage/"+bucket, mw.FormDataContentType(), buf.Bytes(), &out); err != nil {
		return "", err
	}
	return out.URL, nil
}
