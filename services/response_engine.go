package services

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github/itish2003/companion/models"
)

// Category names the keyword bucket a message was classified into.
type Category string

const (
	CategoryMemory      Category = "memory"
	CategoryFamily      Category = "family"
	CategoryDistress    Category = "distress"
	CategoryGratitude   Category = "gratitude"
	CategoryStorageHint Category = "storage_hint"
	CategoryDefault     Category = "default"
)

// ReplyDecision is the engine's full output. Only Text reaches the client.
type ReplyDecision struct {
	Category Category
	Text     string
}

const (
	memoryWithHistoryReply = "I can see you've stored some information with me before. That's great! If you're having trouble remembering something specific, I can help you think through it, or you can add more details using the 'Store Information' button."
	memoryNoHistoryReply   = "Memory can be challenging sometimes. Would you like to store some important information using the 'Store Information' button? That way we can keep track of things together."

	familyKnownReply = "I can see you've shared some family information with me before. Family is so important. Would you like to tell me more about them, or shall I help you remember what you've shared?"
	// The two invite variants differ only in the button mention; clients
	// pin both.
	familyInviteReply          = "Family is so important. Tell me more about your family. You might want to store some information about them so we can remember together."
	familyInviteNoHistoryReply = "Family is so important. Tell me more about your family. You might want to store some information about them using the 'Store Information' button so we can remember together."

	distressReply    = "It's okay to feel confused sometimes. I'm here to help. Take your time, and we can work through this together. If there's something specific you're trying to remember, let me know."
	gratitudeReply   = "You're very welcome! I'm always here when you need someone to talk to. Remember, you can store important information anytime using the menu button above."
	storageHintReply = "You can store any important information by clicking the 'Store Information' button at the top of the screen. This helps us keep track of things that matter to you."
)

// DefaultRepliesWithHistory is the fallback pool when the user has stored notes.
var DefaultRepliesWithHistory = []string{
	"That's interesting. I'm glad we can talk about this together.",
	"I understand. How does that make you feel? Remember, I'm here to help you remember important things too.",
	"Thank you for sharing that with me. Is there anything specific you'd like help remembering?",
	"I'm here to listen and help you remember what's important. What would you like to talk about?",
	"That sounds important. Would you like to add this to your stored information?",
	"I appreciate you telling me about this. How has your day been going?",
	"It's good to hear from you. Is there anything you're trying to remember today?",
	"Thank you for sharing. I'm here whenever you need to talk or remember something together.",
}

// DefaultRepliesNoHistory is the fallback pool when the user has stored nothing.
var DefaultRepliesNoHistory = []string{
	"That's interesting. Can you tell me more about that?",
	"I understand. How does that make you feel?",
	"Thank you for sharing that with me. What would you like to talk about next?",
	"I'm here to listen. Is there anything specific you'd like help with today?",
	"That sounds important. Would you like to store this information so we can remember it?",
	"I appreciate you telling me about this. How has your day been going?",
	"It's good to hear from you. Is there anything you're worried about today?",
	"Thank you for sharing. Remember, I'm here whenever you need to talk.",
}

var familyNoteKeywords = []string{"family", "daughter", "son", "children"}

// RandomSource picks an index in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource makes a seeded *rand.Rand safe for concurrent handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewRandomSource returns the process-wide generator, or a reproducible one
// when seed is non-nil.
func NewRandomSource(seed *uint64) RandomSource {
	if seed == nil {
		return globalSource{}
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(*seed, *seed))}
}

// ResponseEngine maps a message and the user's note history to a reply.
type ResponseEngine interface {
	Respond(message string, history []models.NoteRecord) string
	Decide(message string, history []models.NoteRecord) ReplyDecision
}

type replyRule struct {
	category Category
	triggers []string
	reply    func(history []models.NoteRecord) string
}

type responseEngineImpl struct {
	rules []replyRule
	rng   RandomSource
}

// NewResponseEngine creates the rule-based engine. Rules are evaluated in
// order and the first whose trigger appears in the message wins.
func NewResponseEngine(rng RandomSource) ResponseEngine {
	if rng == nil {
		rng = globalSource{}
	}
	return &responseEngineImpl{
		rng: rng,
		rules: []replyRule{
			{CategoryMemory, []string{"forget", "remember"}, memoryReply},
			{CategoryFamily, []string{"family", "children", "daughter", "son"}, familyReply},
			{CategoryDistress, []string{"confused", "lost", "help"}, fixedReply(distressReply)},
			{CategoryGratitude, []string{"thank"}, fixedReply(gratitudeReply)},
			{CategoryStorageHint, []string{"information", "store", "save"}, fixedReply(storageHintReply)},
		},
	}
}

func (e *responseEngineImpl) Respond(message string, history []models.NoteRecord) string {
	return e.Decide(message, history).Text
}

func (e *responseEngineImpl) Decide(message string, history []models.NoteRecord) ReplyDecision {
	lower := strings.ToLower(message)
	for _, rule := range e.rules {
		if containsAny(lower, rule.triggers) {
			return ReplyDecision{Category: rule.category, Text: rule.reply(history)}
		}
	}

	pool := DefaultRepliesNoHistory
	if len(history) > 0 {
		pool = DefaultRepliesWithHistory
	}
	return ReplyDecision{Category: CategoryDefault, Text: pool[e.rng.IntN(len(pool))]}
}

func memoryReply(history []models.NoteRecord) string {
	if len(history) > 0 {
		return memoryWithHistoryReply
	}
	return memoryNoHistoryReply
}

func familyReply(history []models.NoteRecord) string {
	if len(history) == 0 {
		return familyInviteNoHistoryReply
	}
	for _, rec := range history {
		if containsAny(strings.ToLower(rec.Text), familyNoteKeywords) {
			return familyKnownReply
		}
	}
	return familyInviteReply
}

func fixedReply(text string) func([]models.NoteRecord) string {
	return func([]models.NoteRecord) string { return text }
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
