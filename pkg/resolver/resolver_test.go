package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/resolver/mocks"
)

func newSettings(filters ...string) *mocks.SettingsMock {
	return &mocks.SettingsMock{
		FormatFunc: func() domain.FormatConfig {
			return domain.FormatConfig{QuoteTemplate: "> {content}\n> — {author}", TagTemplate: "{tags}"}
		},
		PlaceholdersFunc: func() domain.Placeholders { return domain.DefaultPlaceholders() },
		FiltersFunc:      func() []string { return filters },
	}
}

// countingSource returns numbered quotes so each occurrence is distinguishable
func countingSource() *mocks.SourceMock {
	var n int32
	return &mocks.SourceMock{
		FetchFunc: func(ctx context.Context, categories []string) domain.Quote {
			i := atomic.AddInt32(&n, 1)
			return domain.Quote{Content: fmt.Sprintf("C%d", i), Author: fmt.Sprintf("A%d", i)}
		},
		FetchBySelectionFunc: func(ctx context.Context, selection string) domain.Quote {
			return domain.Quote{Content: "sel " + selection, Author: "S"}
		},
	}
}

type countingPacer struct{ waits int32 }

func (p *countingPacer) Wait(ctx context.Context) error {
	atomic.AddInt32(&p.waits, 1)
	return ctx.Err()
}

func TestResolver_ResolveAll_Example(t *testing.T) {
	src := &mocks.SourceMock{FetchFunc: func(ctx context.Context, categories []string) domain.Quote {
		return domain.Quote{Content: "C", Author: "A", Tags: []string{}}
	}}
	r := New(Params{Source: src, Settings: newSettings()})

	res, changed := r.ResolveAll(context.Background(), "doc", "Today: {{qotd}}")
	assert.True(t, changed)
	assert.Equal(t, "Today: > C\n> — A", res)
	assert.Len(t, src.FetchCalls(), 1)
	assert.Nil(t, src.FetchCalls()[0].Categories, "random placeholder fetches unfiltered")
}

func TestResolver_ResolveAll_NoPlaceholders(t *testing.T) {
	src := countingSource()
	pacer := &countingPacer{}
	r := New(Params{Source: src, Settings: newSettings(), Pacer: pacer})

	for _, text := range []string{"", "plain text", "{{qot}} {fqotd}} {{ qotd }}"} {
		res, changed := r.ResolveAll(context.Background(), "doc", text)
		assert.False(t, changed)
		assert.Equal(t, text, res)
	}
	assert.Empty(t, src.FetchCalls())
	assert.Zero(t, atomic.LoadInt32(&pacer.waits))
}

func TestResolver_ResolveAll_Exhaustive(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		randomN   int
		filteredN int
	}{
		{name: "random only", text: "{{qotd}} and {{qotd}}", randomN: 2},
		{name: "filtered only", text: "a {{fqotd}} b {{fqotd}} c {{fqotd}}", filteredN: 3},
		{name: "mixed", text: "{{fqotd}}{{qotd}}\n{{qotd}} x {{fqotd}}", randomN: 2, filteredN: 2},
		{name: "adjacent", text: "{{qotd}}{{qotd}}{{qotd}}", randomN: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := countingSource()
			pacer := &countingPacer{}
			r := New(Params{Source: src, Settings: newSettings("Science", "History"), Pacer: pacer})

			res, changed := r.ResolveAll(context.Background(), "doc", tt.text)
			assert.True(t, changed)
			assert.NotContains(t, res, "{{qotd}}")
			assert.NotContains(t, res, "{{fqotd}}")

			calls := src.FetchCalls()
			require.Len(t, calls, tt.randomN+tt.filteredN)
			assert.Equal(t, int32(tt.randomN+tt.filteredN), atomic.LoadInt32(&pacer.waits))
			for i, c := range calls {
				if i < tt.randomN {
					assert.Nil(t, c.Categories, "random fetches first")
					continue
				}
				assert.Equal(t, []string{"Science", "History"}, c.Categories)
			}
			for i := 1; i <= tt.randomN+tt.filteredN; i++ {
				assert.Equal(t, 1, strings.Count(res, fmt.Sprintf("> C%d\n", i)), "each occurrence gets its own quote")
			}
		})
	}
}

func TestResolver_ResolveAll_LeftToRight(t *testing.T) {
	r := New(Params{Source: countingSource(), Settings: newSettings()})
	res, changed := r.ResolveAll(context.Background(), "doc", "1:{{qotd}} 2:{{fqotd}} 3:{{qotd}}")
	require.True(t, changed)
	assert.Equal(t, "1:> C1\n> — A1 2:> C3\n> — A3 3:> C2\n> — A2", res)
}

func TestResolver_ResolveAll_RenderedTokenNotRescanned(t *testing.T) {
	src := &mocks.SourceMock{FetchFunc: func(ctx context.Context, categories []string) domain.Quote {
		return domain.Quote{Content: "say {{qotd}}", Author: "loop"}
	}}
	r := New(Params{Source: src, Settings: newSettings()})
	res, changed := r.ResolveAll(context.Background(), "doc", "x {{qotd}} y")
	assert.True(t, changed)
	assert.Equal(t, "x > say {{qotd}}\n> — loop y", res)
	assert.Len(t, src.FetchCalls(), 1)
}

func TestResolver_ResolveAll_FallbackTreatedAsResolved(t *testing.T) {
	src := &mocks.SourceMock{FetchFunc: func(ctx context.Context, categories []string) domain.Quote {
		return domain.FallbackQuote()
	}}
	r := New(Params{Source: src, Settings: newSettings()})
	res, changed := r.ResolveAll(context.Background(), "doc", "{{qotd}} {{fqotd}}")
	assert.True(t, changed)
	assert.Len(t, src.FetchCalls(), 2, "no retries")
	assert.Contains(t, res, domain.FallbackQuote().Content)
	assert.Contains(t, res, domain.FallbackQuote().Author)
}

func TestResolver_ResolveAll_FilterReadPerFetch(t *testing.T) {
	var n int32
	settings := newSettings()
	settings.FiltersFunc = func() []string {
		if atomic.AddInt32(&n, 1) == 1 {
			return []string{"Life"}
		}
		return []string{"Love"}
	}
	src := countingSource()
	r := New(Params{Source: src, Settings: settings})
	_, changed := r.ResolveAll(context.Background(), "doc", "{{fqotd}} {{fqotd}}")
	require.True(t, changed)
	calls := src.FetchCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"Life"}, calls[0].Categories)
	assert.Equal(t, []string{"Love"}, calls[1].Categories)
}

func TestResolver_ResolveAll_Reentrancy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var fetches int32
	src := &mocks.SourceMock{FetchFunc: func(ctx context.Context, categories []string) domain.Quote {
		if atomic.AddInt32(&fetches, 1) == 1 {
			close(started)
			<-release
		}
		return domain.Quote{Content: "C", Author: "A"}
	}}
	r := New(Params{Source: src, Settings: newSettings()})

	var wg sync.WaitGroup
	wg.Add(1)
	var firstRes string
	var firstChanged bool
	go func() {
		defer wg.Done()
		firstRes, firstChanged = r.ResolveAll(context.Background(), "doc", "{{qotd}}")
	}()

	<-started
	res, changed := r.ResolveAll(context.Background(), "doc", "second {{qotd}}")
	assert.False(t, changed)
	assert.Equal(t, "second {{qotd}}", res)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches), "no fetch from the dropped pass")

	// other documents are not blocked
	res, changed = r.ResolveAll(context.Background(), "other", "{{qotd}}")
	assert.True(t, changed)
	assert.Equal(t, "> C\n> — A", res)

	close(release)
	wg.Wait()
	assert.True(t, firstChanged)
	assert.Equal(t, "> C\n> — A", firstRes)

	// guard released after the pass
	_, changed = r.ResolveAll(context.Background(), "doc", "{{qotd}}")
	assert.True(t, changed)
}

func TestResolver_ResolveAll_Cancelled(t *testing.T) {
	src := countingSource()
	r := New(Params{Source: src, Settings: newSettings()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, changed := r.ResolveAll(ctx, "doc", "{{qotd}}")
	assert.False(t, changed)
	assert.Equal(t, "{{qotd}}", res)
	assert.Empty(t, src.FetchCalls())
	assert.False(t, r.flight.Busy("doc"), "guard released on early exit")
}

func TestResolver_ResolveAll_EmptyToken(t *testing.T) {
	settings := newSettings()
	settings.PlaceholdersFunc = func() domain.Placeholders { return domain.Placeholders{Random: "", Filtered: "[[q]]"} }
	src := countingSource()
	r := New(Params{Source: src, Settings: settings})
	res, changed := r.ResolveAll(context.Background(), "doc", "a [[q]]")
	assert.True(t, changed)
	assert.Equal(t, "a > C1\n> — A1", res)
}

func TestResolver_ResolveDocument(t *testing.T) {
	t.Run("writes once and records history", func(t *testing.T) {
		docs := &mocks.DocumentStoreMock{
			GetDocumentFunc: func(ctx context.Context, id string) (*domain.Document, error) {
				return &domain.Document{ID: id, Text: "{{qotd}} {{qotd}} {{fqotd}}"}, nil
			},
			WriteDocumentTextFunc: func(ctx context.Context, id, text string) error { return nil },
		}
		history := &mocks.HistoryRecorderMock{AddInsertionFunc: func(ctx context.Context, ins *domain.Insertion) error {
			return nil
		}}
		r := New(Params{Source: countingSource(), Settings: newSettings("Life"), Documents: docs, History: history})

		changed, err := r.ResolveDocument(context.Background(), "d1")
		require.NoError(t, err)
		assert.True(t, changed)
		require.Len(t, docs.WriteDocumentTextCalls(), 1)
		assert.Equal(t, "d1", docs.WriteDocumentTextCalls()[0].Id)
		assert.Equal(t, "> C1\n> — A1 > C2\n> — A2 > C3\n> — A3", docs.WriteDocumentTextCalls()[0].Text)

		calls := history.AddInsertionCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, domain.QuoteKindRandom, calls[0].Ins.Kind)
		assert.Equal(t, domain.QuoteKindFiltered, calls[2].Ins.Kind)
		assert.Equal(t, "d1", calls[2].Ins.DocumentID)
		assert.Equal(t, "C3", calls[2].Ins.Content)
	})

	t.Run("no placeholders, no write", func(t *testing.T) {
		docs := &mocks.DocumentStoreMock{
			GetDocumentFunc: func(ctx context.Context, id string) (*domain.Document, error) {
				return &domain.Document{ID: id, Text: "nothing here"}, nil
			},
		}
		r := New(Params{Source: countingSource(), Settings: newSettings(), Documents: docs})
		changed, err := r.ResolveDocument(context.Background(), "d1")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, docs.WriteDocumentTextCalls())
	})

	t.Run("get error", func(t *testing.T) {
		docs := &mocks.DocumentStoreMock{
			GetDocumentFunc: func(ctx context.Context, id string) (*domain.Document, error) {
				return nil, errors.New("not found")
			},
		}
		r := New(Params{Source: countingSource(), Settings: newSettings(), Documents: docs})
		_, err := r.ResolveDocument(context.Background(), "d1")
		require.EqualError(t, err, "get document d1: not found")
		assert.False(t, r.flight.Busy("d1"))
	})

	t.Run("write error", func(t *testing.T) {
		docs := &mocks.DocumentStoreMock{
			GetDocumentFunc: func(ctx context.Context, id string) (*domain.Document, error) {
				return &domain.Document{ID: id, Text: "{{qotd}}"}, nil
			},
			WriteDocumentTextFunc: func(ctx context.Context, id, text string) error { return errors.New("locked") },
		}
		history := &mocks.HistoryRecorderMock{}
		r := New(Params{Source: countingSource(), Settings: newSettings(), Documents: docs, History: history})
		changed, err := r.ResolveDocument(context.Background(), "d1")
		require.EqualError(t, err, "write document d1: locked")
		assert.False(t, changed)
		assert.Empty(t, history.AddInsertionCalls())
	})

	t.Run("history failure ignored", func(t *testing.T) {
		docs := &mocks.DocumentStoreMock{
			GetDocumentFunc: func(ctx context.Context, id string) (*domain.Document, error) {
				return &domain.Document{ID: id, Text: "{{qotd}}"}, nil
			},
			WriteDocumentTextFunc: func(ctx context.Context, id, text string) error { return nil },
		}
		history := &mocks.HistoryRecorderMock{AddInsertionFunc: func(ctx context.Context, ins *domain.Insertion) error {
			return errors.New("db gone")
		}}
		r := New(Params{Source: countingSource(), Settings: newSettings(), Documents: docs, History: history})
		changed, err := r.ResolveDocument(context.Background(), "d1")
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("busy document skipped", func(t *testing.T) {
		docs := &mocks.DocumentStoreMock{}
		src := countingSource()
		flight := NewFlight()
		require.True(t, flight.TryAcquire("d1"))
		r := New(Params{Source: src, Settings: newSettings(), Documents: docs, Flight: flight})
		changed, err := r.ResolveDocument(context.Background(), "d1")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Empty(t, docs.GetDocumentCalls())
		assert.Empty(t, src.FetchCalls())
	})
}

func TestResolver_InsertQuote(t *testing.T) {
	newDocs := func(text string) *mocks.DocumentStoreMock {
		return &mocks.DocumentStoreMock{
			GetDocumentFunc: func(ctx context.Context, id string) (*domain.Document, error) {
				return &domain.Document{ID: id, Text: text}, nil
			},
			WriteDocumentTextFunc: func(ctx context.Context, id, text string) error { return nil },
		}
	}

	tests := []struct {
		name      string
		text      string
		kind      domain.QuoteKind
		selection string
		want      string
	}{
		{name: "random into empty", kind: domain.QuoteKindRandom, want: "> C1\n> — A1"},
		{name: "filtered appended", text: "notes\n\n", kind: domain.QuoteKindFiltered, want: "notes\n> C1\n> — A1"},
		{name: "selection", text: "notes", kind: domain.QuoteKindSelection, selection: "wisdom",
			want: "notes\n> sel wisdom\n> — S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := newDocs(tt.text)
			history := &mocks.HistoryRecorderMock{AddInsertionFunc: func(ctx context.Context, ins *domain.Insertion) error {
				return nil
			}}
			r := New(Params{Source: countingSource(), Settings: newSettings("Life"), Documents: docs, History: history})
			text, err := r.InsertQuote(context.Background(), "d1", tt.kind, tt.selection)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
			require.Len(t, docs.WriteDocumentTextCalls(), 1)
			assert.Equal(t, tt.want, docs.WriteDocumentTextCalls()[0].Text)
			require.Len(t, history.AddInsertionCalls(), 1)
			assert.Equal(t, tt.kind, history.AddInsertionCalls()[0].Ins.Kind)
		})
	}

	t.Run("busy", func(t *testing.T) {
		flight := NewFlight()
		flight.TryAcquire("d1")
		r := New(Params{Source: countingSource(), Settings: newSettings(), Documents: newDocs(""), Flight: flight})
		_, err := r.InsertQuote(context.Background(), "d1", domain.QuoteKindRandom, "")
		require.ErrorIs(t, err, ErrInFlight)
	})
}

func TestResolver_Quote(t *testing.T) {
	src := countingSource()
	r := New(Params{Source: src, Settings: newSettings("Life")})

	q, text := r.Quote(context.Background(), domain.QuoteKindFiltered, "")
	assert.Equal(t, "C1", q.Content)
	assert.Equal(t, "> C1\n> — A1", text)
	assert.Equal(t, []string{"Life"}, src.FetchCalls()[0].Categories)

	_, text = r.Quote(context.Background(), domain.QuoteKindSelection, "love")
	assert.Equal(t, "> sel love\n> — S", text)
}

func TestFlight(t *testing.T) {
	f := NewFlight()
	assert.True(t, f.TryAcquire("a"))
	assert.False(t, f.TryAcquire("a"))
	assert.True(t, f.TryAcquire("b"))
	assert.True(t, f.Busy("a"))
	f.Release("a")
	assert.False(t, f.Busy("a"))
	assert.True(t, f.TryAcquire("a"))
}

func TestRatePacer(t *testing.T) {
	assert.IsType(t, NoPacer{}, NewRatePacer(0))

	p := NewRatePacer(20 * time.Millisecond)
	st := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(st), 20*time.Millisecond, "first fetch waits too")

	st = time.Now()
	for i := 0; i < 2; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.GreaterOrEqual(t, time.Since(st), 40*time.Millisecond)

	// idle period doesn't let the next fetch through unpaced
	time.Sleep(50 * time.Millisecond)
	st = time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(st), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, p.Wait(ctx))
	assert.Error(t, NoPacer{}.Wait(ctx))
}

func TestRatePacer_SharedAcrossPasses(t *testing.T) {
	p := NewRatePacer(20 * time.Millisecond)
	st := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Wait(context.Background()))
		}()
	}
	wg.Wait()
	assert.GreaterOrEqual(t, time.Since(st), 40*time.Millisecond, "three concurrent waits take two extra periods")
}

func TestResolver_Edit(t *testing.T) {
	fetching, unblock := make(chan struct{}), make(chan struct{})
	src := &mocks.SourceMock{FetchFunc: func(ctx context.Context, categories []string) domain.Quote {
		close(fetching)
		<-unblock
		return domain.Quote{Content: "C", Author: "A"}
	}}
	r := New(Params{Source: src, Settings: newSettings()})

	var edited int
	require.NoError(t, r.Edit(context.Background(), "doc", func(ctx context.Context) error {
		edited++
		assert.True(t, r.flight.Busy("doc"), "guard held while editing")
		_, changed := r.ResolveAll(ctx, "doc", "{{qotd}}")
		assert.False(t, changed, "pass can't start during edit")
		return nil
	}))
	assert.Equal(t, 1, edited)
	assert.False(t, r.flight.Busy("doc"))
	assert.Empty(t, src.FetchCalls())

	errEdit := errors.New("save failed")
	assert.ErrorIs(t, r.Edit(context.Background(), "doc", func(context.Context) error { return errEdit }), errEdit)
	assert.False(t, r.flight.Busy("doc"), "released on error")

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ResolveAll(context.Background(), "doc", "{{qotd}}")
	}()
	<-fetching
	err := r.Edit(context.Background(), "doc", func(context.Context) error {
		t.Error("edit must not run during a pass")
		return nil
	})
	require.ErrorIs(t, err, ErrInFlight)
	assert.NoError(t, r.Edit(context.Background(), "other", func(context.Context) error { return nil }),
		"other documents not blocked")
	close(unblock)
	<-done
}
