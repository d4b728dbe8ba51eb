package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/srstalent/talentconnect/internal/common"
	"github.com/srstalent/talentconnect/internal/server/queue"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// CodeStore keeps issued verification codes until they are confirmed or
// expire.
type CodeStore interface {
	// Save stores the code for channel/target with the given time to live,
	// replacing any previous code for the same target.
	Save(ctx context.Context, channel, target, code string, ttl time.Duration) error

	// Get returns the live code for channel/target, or common.ErrorNotFound
	// when none exists or it expired.
	Get(ctx context.Context, channel, target string) (string, error)

	// Delete removes the code for channel/target.
	Delete(ctx context.Context, channel, target string) error
}

// RedisCodeStore keeps codes in Redis; expiry is delegated to key TTLs.
type RedisCodeStore struct {
	c *redis.Client
}

func NewRedisCodeStore(addr string) *RedisCodeStore {
	return &RedisCodeStore{c: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *RedisCodeStore) key(channel, target string) string {
	return fmt.Sprintf("verify:%s:%s", channel, target)
}

func (s *RedisCodeStore) Save(ctx context.Context, channel, target, code string, ttl time.Duration) error {
	return s.c.Set(ctx, s.key(channel, target), code, ttl).Err()
}

func (s *RedisCodeStore) Get(ctx context.Context, channel, target string) (string, error) {
	code, err := s.c.Get(ctx, s.key(channel, target)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorNotFound
		}
		return "", err
	}
	return code, nil
}

func (s *RedisCodeStore) Delete(ctx context.Context, channel, target string) error {
	return s.c.Del(ctx, s.key(channel, target)).Err()
}

func (s *RedisCodeStore) Close() error { return s.c.Close() }

// InMemoryCodeStore keeps codes in a map with explicit expiry timestamps.
// Used by tests and single-node demo wiring.
type InMemoryCodeStore struct {
	now func() time.Time

	mu    sync.Mutex
	codes map[string]inMemoryCode
}

type inMemoryCode struct {
	code    string
	expires time.Time
}

func NewInMemoryCodeStore(now func() time.Time) *InMemoryCodeStore {
	if now == nil {
		now = time.Now
	}
	return &InMemoryCodeStore{now: now, codes: make(map[string]inMemoryCode)}
}

func (s *InMemoryCodeStore) Save(_ context.Context, channel, target, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[channel+":"+target] = inMemoryCode{code: code, expires: s.now().Add(ttl)}
	return nil
}

func (s *InMemoryCodeStore) Get(_ context.Context, channel, target string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[channel+":"+target]
	if !ok || s.now().After(entry.expires) {
		delete(s.codes, channel+":"+target)
		return "", common.ErrorNotFound
	}
	return entry.code, nil
}

func (s *InMemoryCodeStore) Delete(_ context.Context, channel, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, channel+":"+target)
	return nil
}

// VerificationService issues and confirms contact verification codes. The
// code itself travels to the user out of band: issuing publishes a
// CodeIssued event that a mail/SMS gateway consumes.
type VerificationService struct {
	store     CodeStore
	publisher queue.Publisher
	codeTTL   time.Duration
}

func NewVerificationService(store CodeStore, pub queue.Publisher, codeTTL time.Duration) *VerificationService {
	return &VerificationService{store: store, publisher: pub, codeTTL: codeTTL}
}

// RequestCode generates a fresh numeric code for channel/target, stores it
// with a TTL, and announces it on the event bus.
func (s *VerificationService) RequestCode(ctx context.Context, channel, target string) error {
	code, err := common.MakeNumericCode(CodeLength)
	if err != nil {
		return common.ErrorInternal
	}
	if err := s.store.Save(ctx, channel, target, code, s.codeTTL); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	return s.publisher.Publish(ctx, queue.Exchange, queue.KeyCodeIssued, queue.CodeIssued{
		Channel: channel,
		Target:  target,
		Code:    code,
	})
}

// ConfirmCode checks the submitted code. A missing or expired code yields
// ErrCodeExpired; a wrong one ErrCodeMismatch. A confirmed code is
// consumed and cannot be replayed.
func (s *VerificationService) ConfirmCode(ctx context.Context, channel, target, code string) error {
	stored, err := s.store.Get(ctx, channel, target)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrCodeExpired
		}
		return fmt.Errorf("load code: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return common.ErrCodeMismatch
	}
	return s.store.Delete(ctx, channel, target)
}
