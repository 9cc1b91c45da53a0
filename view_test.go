package puremvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMediator counts its lifecycle hooks and records every
// notification it handles.
type recordingMediator struct {
	*BaseMediator
	interests  []string
	handled    []Notification
	registered int
	removed    int
	onHandle   func(note Notification)
}

func newRecordingMediator(name string, interests ...string) *recordingMediator {
	return &recordingMediator{
		BaseMediator: NewBaseMediator(name, nil),
		interests:    interests,
	}
}

func (m *recordingMediator) ListNotificationInterests() []string { return m.interests }

func (m *recordingMediator) HandleNotification(note Notification) {
	m.handled = append(m.handled, note)
	if m.onHandle != nil {
		m.onHandle(note)
	}
}

func (m *recordingMediator) OnRegister() { m.registered++ }

func (m *recordingMediator) OnRemove() { m.removed++ }

// newTestView returns the View for a key unique to the test and
// releases the whole core afterwards.
func newTestView(t *testing.T) *View {
	t.Helper()
	key := t.Name()
	t.Cleanup(func() { RemoveCore(key) })
	return GetView(key)
}

func TestViewMultiton(t *testing.T) {
	t.Run("GetView returns the same instance for a key", func(t *testing.T) {
		key := t.Name()
		t.Cleanup(func() { RemoveView(key) })

		v1 := GetView(key)
		v2 := GetView(key)
		require.NotNil(t, v1)
		assert.Same(t, v1, v2)
		assert.Equal(t, key, v1.Key())
	})

	t.Run("NewView panics on a duplicate key", func(t *testing.T) {
		key := t.Name()
		t.Cleanup(func() { RemoveView(key) })

		NewView(key)
		assert.PanicsWithValue(t,
			"puremvc: view instance for multiton key '"+key+"' already constructed",
			func() { NewView(key) })
	})

	t.Run("RemoveView frees the key for reconstruction", func(t *testing.T) {
		key := t.Name()
		t.Cleanup(func() { RemoveView(key) })

		v1 := NewView(key)
		RemoveView(key)
		v2 := NewView(key)
		assert.NotSame(t, v1, v2)
	})
}

func TestRegisterAndNotifyObserver(t *testing.T) {
	v := newTestView(t)

	var got []Notification
	context := &struct{}{}
	v.RegisterObserver("N1", NewObserver(func(n Notification) { got = append(got, n) }, context))

	v.NotifyObservers(Notification{Name: "N1", Body: 42})
	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0].Body)
}

func TestNotifyObserversUnknownNameIsNoop(t *testing.T) {
	v := newTestView(t)
	assert.NotPanics(t, func() {
		v.NotifyObservers(Notification{Name: "nobody-listens"})
	})
}

func TestObserverRegistrationIsNotDeduplicated(t *testing.T) {
	v := newTestView(t)

	count := 0
	context := &struct{}{}
	observer := NewObserver(func(Notification) { count++ }, context)
	v.RegisterObserver("N1", observer)
	v.RegisterObserver("N1", observer)

	v.NotifyObservers(Notification{Name: "N1"})
	assert.Equal(t, 2, count)
}

func TestSameObserverUnderTwoNamesDeliversOncePerName(t *testing.T) {
	v := newTestView(t)

	count := 0
	context := &struct{}{}
	observer := NewObserver(func(Notification) { count++ }, context)
	v.RegisterObserver("N1", observer)
	v.RegisterObserver("N2", observer)

	v.NotifyObservers(Notification{Name: "N1"})
	v.NotifyObservers(Notification{Name: "N2"})
	assert.Equal(t, 2, count)
}

func TestRemoveObserver(t *testing.T) {
	t.Run("empty list is deleted from the map", func(t *testing.T) {
		v := newTestView(t)
		context := &struct{}{}
		v.RegisterObserver("N1", NewObserver(func(Notification) {}, context))

		v.RemoveObserver("N1", context)
		_, present := v.observerMap["N1"]
		assert.False(t, present, "observer map must not hold an empty list")
	})

	t.Run("removes at most one observer per call, most recent first", func(t *testing.T) {
		v := newTestView(t)

		var fired []string
		context := &struct{}{}
		v.RegisterObserver("N1", NewObserver(func(Notification) { fired = append(fired, "first") }, context))
		v.RegisterObserver("N1", NewObserver(func(Notification) { fired = append(fired, "second") }, context))

		v.RemoveObserver("N1", context)
		v.NotifyObservers(Notification{Name: "N1"})
		assert.Equal(t, []string{"first"}, fired)

		v.RemoveObserver("N1", context)
		v.NotifyObservers(Notification{Name: "N1"})
		assert.Equal(t, []string{"first"}, fired)
	})

	t.Run("unknown name or context is a no-op", func(t *testing.T) {
		v := newTestView(t)
		assert.NotPanics(t, func() {
			v.RemoveObserver("never-registered", &struct{}{})
		})
	})
}

func TestRegisterMediator(t *testing.T) {
	t.Run("subscribes every interest and fires OnRegister once", func(t *testing.T) {
		v := newTestView(t)
		m := newRecordingMediator("med", "N1", "N2")

		v.RegisterMediator(m)
		assert.Equal(t, 1, m.registered)
		assert.Equal(t, v.Key(), m.Key())

		v.NotifyObservers(Notification{Name: "N1"})
		v.NotifyObservers(Notification{Name: "N2"})
		assert.Len(t, m.handled, 2)
	})

	t.Run("no interests means no observers", func(t *testing.T) {
		v := newTestView(t)
		m := newRecordingMediator("med")

		v.RegisterMediator(m)
		assert.Empty(t, v.observerMap)
		assert.Equal(t, 1, m.registered)
	})

	t.Run("duplicate name is a no-op", func(t *testing.T) {
		v := newTestView(t)
		first := newRecordingMediator("med", "N1")
		second := newRecordingMediator("med", "N1")

		v.RegisterMediator(first)
		v.RegisterMediator(second)

		assert.Same(t, Mediator(first), v.RetrieveMediator("med"))
		assert.Equal(t, 0, second.registered, "second registration hook must never fire")

		v.NotifyObservers(Notification{Name: "N1"})
		assert.Len(t, first.handled, 1)
		assert.Empty(t, second.handled)
	})
}

func TestRetrieveMediator(t *testing.T) {
	v := newTestView(t)
	assert.Nil(t, v.RetrieveMediator("missing"))

	m := newRecordingMediator("med")
	v.RegisterMediator(m)
	assert.Same(t, Mediator(m), v.RetrieveMediator("med"))
	assert.True(t, v.HasMediator("med"))
	assert.False(t, v.HasMediator("missing"))
}

func TestRemoveMediator(t *testing.T) {
	t.Run("unknown name returns nil with no side effects", func(t *testing.T) {
		v := newTestView(t)
		assert.Nil(t, v.RemoveMediator("missing"))
	})

	t.Run("unsubscribes every interest", func(t *testing.T) {
		v := newTestView(t)
		m := newRecordingMediator("med", "N1", "N2", "N3")
		v.RegisterMediator(m)

		removed := v.RemoveMediator("med")
		assert.Same(t, Mediator(m), removed)
		assert.Equal(t, 1, m.removed)
		assert.False(t, v.HasMediator("med"))

		v.NotifyObservers(Notification{Name: "N1"})
		v.NotifyObservers(Notification{Name: "N2"})
		v.NotifyObservers(Notification{Name: "N3"})
		assert.Empty(t, m.handled)
		assert.Empty(t, v.observerMap)
	})

	t.Run("allows re-registration afterwards", func(t *testing.T) {
		v := newTestView(t)
		m := newRecordingMediator("med", "N1")
		v.RegisterMediator(m)
		v.RemoveMediator("med")
		v.RegisterMediator(m)

		assert.Equal(t, 2, m.registered)
		v.NotifyObservers(Notification{Name: "N1"})
		assert.Len(t, m.handled, 1)
	})
}

// A mediator that removes itself while handling the very notification
// being delivered must not corrupt the in-flight delivery.
func TestReentrantRemovalDuringNotify(t *testing.T) {
	v := newTestView(t)

	m := newRecordingMediator("self-removing", "N6")
	m.onHandle = func(Notification) {
		v.RemoveMediator("self-removing")
	}
	v.RegisterMediator(m)

	require.NotPanics(t, func() {
		v.NotifyObservers(Notification{Name: "N6"})
	})
	assert.Len(t, m.handled, 1, "handler runs exactly once")
	assert.Equal(t, 1, m.removed, "removal hook fires exactly once")
	assert.False(t, v.HasMediator("self-removing"))

	v.NotifyObservers(Notification{Name: "N6"})
	assert.Len(t, m.handled, 1, "no delivery after removal")
}

// A handler registering another observer for the name being delivered
// must not widen the in-flight delivery.
func TestReentrantRegistrationDuringNotify(t *testing.T) {
	v := newTestView(t)

	lateCount := 0
	context := &struct{}{}
	late := NewObserver(func(Notification) { lateCount++ }, context)

	firstContext := &struct{}{}
	v.RegisterObserver("N1", NewObserver(func(Notification) {
		v.RegisterObserver("N1", late)
	}, firstContext))

	v.NotifyObservers(Notification{Name: "N1"})
	assert.Equal(t, 0, lateCount, "snapshot isolates the in-flight delivery")

	v.NotifyObservers(Notification{Name: "N1"})
	assert.Equal(t, 1, lateCount, "later deliveries see the new observer")
}
