// Package chat turns free-text messages into replies about the variable catalog.
package chat

import (
	"strings"

	"tradechat/internal/domain/catalog"
)

// Intent is the category a message was resolved to.
type Intent string

const (
	IntentEmpty    Intent = "empty"
	IntentHelp     Intent = "help"
	IntentList     Intent = "list"
	IntentTypology Intent = "typology"
	IntentLookup   Intent = "lookup"
	IntentNotFound Intent = "not_found"
)

// Reply is the outcome of a single message.
type Reply struct {
	Intent Intent
	Text   string

	// Variable is set only for IntentLookup.
	Variable *catalog.Variable
}

// rule is one entry of the dispatch table. Rules are evaluated in order and the
// first whose match returns true produces the reply.
type rule struct {
	match func(low string) bool
	reply func(low string) Reply
}

// Responder answers chat messages. It holds no per-conversation state and is safe
// for concurrent use.
type Responder struct {
	catalog *catalog.Catalog
	rules   []rule
}

// NewResponder creates a Responder over a loaded catalog.
func NewResponder(cat *catalog.Catalog) *Responder {
	r := &Responder{catalog: cat}

	r.rules = []rule{
		{
			match: isHelp,
			reply: static(IntentHelp, HelpText),
		},
		{
			match: containsAny(listKeywords),
			reply: func(string) Reply {
				return Reply{Intent: IntentList, Text: formatNames(r.catalog.Names())}
			},
		},
		{
			match: containsAny(typologyKeywords),
			reply: static(IntentTypology, TypologyText),
		},
		{
			match: func(string) bool { return true },
			reply: r.lookup,
		},
	}

	return r
}

// Respond returns the reply text for a raw message.
func (r *Responder) Respond(message string) string {
	return r.Reply(message).Text
}

// Reply resolves a raw message to an intent and its reply.
func (r *Responder) Reply(message string) Reply {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Reply{Intent: IntentEmpty, Text: PromptText}
	}

	low := strings.ToLower(trimmed)
	for _, rl := range r.rules {
		if rl.match(low) {
			return rl.reply(low)
		}
	}

	// Unreachable: the lookup rule matches everything.
	return Reply{Intent: IntentNotFound, Text: NotFoundText}
}

func (r *Responder) lookup(low string) Reply {
	v, ok := r.catalog.Search(low)
	if !ok {
		return Reply{Intent: IntentNotFound, Text: NotFoundText}
	}
	return Reply{Intent: IntentLookup, Text: FormatVariable(v), Variable: &v}
}

func isHelp(low string) bool {
	_, ok := helpSynonyms[low]
	return ok
}

func containsAny(words []string) func(string) bool {
	return func(low string) bool {
		for _, w := range words {
			if strings.Contains(low, w) {
				return true
			}
		}
		return false
	}
}

func static(intent Intent, text string) func(string) Reply {
	return func(string) Reply {
		return Reply{Intent: intent, Text: text}
	}
}
