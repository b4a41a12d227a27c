package application

import (
	"testing"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNotifierFiresEachSubscriberOnce(t *testing.T) {
	t.Parallel()

	notifier := NewNotifier()
	ada := domain.Personality{ID: "ada", Name: "Ada"}

	var first, second []domain.PersonalityID
	notifier.OnDenied(func(p domain.Personality) { first = append(first, p.ID) })
	notifier.OnDenied(func(p domain.Personality) { second = append(second, p.ID) })

	notifier.Denied(ada)

	assert.Equal(t, []domain.PersonalityID{"ada"}, first)
	assert.Equal(t, []domain.PersonalityID{"ada"}, second)
}

func TestNotifierChannelsAreIndependent(t *testing.T) {
	t.Parallel()

	notifier := NewNotifier()
	denied, recorded := 0, 0
	notifier.OnDenied(func(domain.Personality) { denied++ })
	notifier.OnRecorded(func(domain.Personality) { recorded++ })

	notifier.Recorded(domain.Personality{ID: "ada"})
	notifier.Recorded(domain.Personality{ID: "ada"})

	assert.Zero(t, denied)
	assert.Equal(t, 2, recorded)
}

func TestNotifierUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	notifier := NewNotifier()
	calls := 0
	sub := notifier.OnRecorded(func(domain.Personality) { calls++ })

	notifier.Recorded(domain.Personality{ID: "ada"})
	sub.Unsubscribe()
	sub.Unsubscribe()
	notifier.Recorded(domain.Personality{ID: "ada"})

	assert.Equal(t, 1, calls)
}

func TestNotifierHandlerMayUnsubscribeItself(t *testing.T) {
	t.Parallel()

	notifier := NewNotifier()
	calls := 0
	var sub *Subscription
	sub = notifier.OnDenied(func(domain.Personality) {
		calls++
		sub.Unsubscribe()
	})

	notifier.Denied(domain.Personality{ID: "ada"})
	notifier.Denied(domain.Personality{ID: "ada"})

	assert.Equal(t, 1, calls)
}

func TestNotifierRejectsNilHandler(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewNotifier().OnDenied(nil) })
}
