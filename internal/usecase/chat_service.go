package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

const historyLimit = 50

// ChatService orchestrates a single chat turn: extract criteria from
// the message, filter the catalog, and produce a reply either from the
// AI backend or from templates when the backend is absent or failing.
type ChatService struct {
	catalog   domain.PropertyCatalog
	profiles  domain.ProfileStore
	backend   domain.ChatBackend // nil when no backend is configured
	extractor *CriteriaExtractor
	filter    *CriteriaFilter
	engine    *MatchEngine
	responder *TemplateResponder
	logger    *zap.Logger
}

// NewChatService creates a chat service. backend may be nil, in which
// case every reply comes from the template responder.
func NewChatService(
	catalog domain.PropertyCatalog,
	profiles domain.ProfileStore,
	backend domain.ChatBackend,
	engine *MatchEngine,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		catalog:   catalog,
		profiles:  profiles,
		backend:   backend,
		extractor: NewCriteriaExtractor(),
		filter:    NewCriteriaFilter(),
		engine:    engine,
		responder: NewTemplateResponder(),
		logger:    logger,
	}
}

// Chat processes one user message and returns the wire-contract
// result. Backend failures degrade to template responses and are never
// surfaced to the caller.
func (s *ChatService) Chat(ctx context.Context, userID, message string) *domain.ChatResult {
	if message == "" {
		return &domain.ChatResult{
			Response:        apologyResponse,
			Recommendations: []domain.Property{},
			Type:            domain.ResponseTypeError,
		}
	}

	profile := s.profiles.GetOrCreate(userID)

	criteria := s.extractor.Extract(message)
	matches := s.filter.Apply(s.catalog.All(), criteria)

	s.logger.Debug("chat turn",
		zap.String("user_id", userID),
		zap.Bool("criteria_empty", criteria.IsEmpty()),
		zap.Int("matches", len(matches)))

	response := s.reply(ctx, message, profile, criteria, matches)

	s.recordInteraction(profile, message)

	return &domain.ChatResult{
		Response:        response,
		Recommendations: matches,
		Type:            domain.ResponseTypeAI,
		Criteria:        &criteria,
	}
}

// reply asks the AI backend first and falls back to templates on any
// failure. The only recovery strategy is degrade-to-template.
func (s *ChatService) reply(ctx context.Context, message string, profile *domain.UserProfile, criteria domain.Criteria, matches []domain.Property) string {
	if s.backend != nil {
		bundle := &domain.ChatContext{
			Message:    message,
			Profile:    profile,
			Candidates: matches,
			Criteria:   criteria,
			History:    profile.SearchHistory,
		}
		reply, err := s.backend.Reply(ctx, bundle)
		if err == nil && reply != "" {
			return reply
		}
		s.logger.Warn("ai backend failed, using template response", zap.Error(err))
	}

	return s.responder.Respond(message, criteria, matches)
}

func (s *ChatService) recordInteraction(profile *domain.UserProfile, message string) {
	profile.SearchHistory = append(profile.SearchHistory, message)
	if len(profile.SearchHistory) > historyLimit {
		profile.SearchHistory = profile.SearchHistory[len(profile.SearchHistory)-historyLimit:]
	}
	profile.LastInteraction = time.Now()
}

// Recommend returns the profile-driven recommendations for a user,
// creating the profile with defaults on first reference. Non-empty
// criteria narrow the candidate pool before scoring.
func (s *ChatService) Recommend(userID string, criteria domain.Criteria) []domain.MatchResult {
	profile := s.profiles.GetOrCreate(userID)

	listings := s.catalog.All()
	if !criteria.IsEmpty() {
		listings = s.filter.Apply(listings, criteria)
	}
	return s.engine.Recommend(profile, listings)
}

// Explain produces the score breakdown for one catalog listing. A
// missing profile or property is a lookup miss, reported through
// sentinel errors for the delivery layer to phrase.
func (s *ChatService) Explain(userID, propertyID string) (*domain.ScoreBreakdown, error) {
	profile, ok := s.profiles.Get(userID)
	if !ok {
		return nil, domain.ErrProfileNotFound
	}

	property, ok := s.catalog.ByID(propertyID)
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}

	breakdown := s.engine.Explain(property, profile)
	return &breakdown, nil
}

// UpdatePreferences applies an allow-listed preference patch to the
// user's profile, creating it first if needed.
func (s *ChatService) UpdatePreferences(userID string, prefs map[string]interface{}) (*domain.UserProfile, error) {
	profile := s.profiles.GetOrCreate(userID)
	if err := ApplyPreferences(profile, prefs); err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProperty adds a listing to the user's saved list. Saving twice
// is a no-op.
func (s *ChatService) SaveProperty(userID, propertyID string) error {
	if _, ok := s.catalog.ByID(propertyID); !ok {
		return domain.ErrPropertyNotFound
	}

	profile := s.profiles.GetOrCreate(userID)
	for _, id := range profile.SavedProperties {
		if id == propertyID {
			return nil
		}
	}
	profile.SavedProperties = append(profile.SavedProperties, propertyID)
	profile.LastInteraction = time.Now()
	return nil
}

// Profile returns the stored profile for a user, if any.
func (s *ChatService) Profile(userID string) (*domain.UserProfile, bool) {
	return s.profiles.Get(userID)
}
