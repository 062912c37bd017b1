package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MrSnakeDoc/scoreline/internal/apperror"
	"github.com/MrSnakeDoc/scoreline/internal/domain"
	"github.com/MrSnakeDoc/scoreline/internal/favorites"
	"github.com/MrSnakeDoc/scoreline/internal/logger"
	"github.com/MrSnakeDoc/scoreline/internal/store"
)

const messiID = "34145937"

type fakeSports struct {
	players    map[string]domain.Player
	teams      map[string]domain.Team
	honours    map[string][]domain.Honour
	squads     map[string][]domain.Player
	results    map[string][]domain.Event
	lookupErr  error
	honoursErr error
	squadErr   error

	// block, when set, holds lookups until closed.
	block   chan struct{}
	mu      sync.Mutex
	lookups int
}

func (f *fakeSports) wait() {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeSports) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

func (f *fakeSports) LookupPlayer(ctx context.Context, id string) (domain.Player, error) {
	f.wait()
	if f.lookupErr != nil {
		return domain.Player{}, f.lookupErr
	}
	p, ok := f.players[id]
	if !ok {
		return domain.Player{}, apperror.NotFound("player", id)
	}
	return p, nil
}

func (f *fakeSports) LookupTeam(ctx context.Context, id string) (domain.Team, error) {
	f.wait()
	if f.lookupErr != nil {
		return domain.Team{}, f.lookupErr
	}
	t, ok := f.teams[id]
	if !ok {
		return domain.Team{}, apperror.NotFound("team", id)
	}
	return t, nil
}

func (f *fakeSports) Honours(ctx context.Context, name string) ([]domain.Honour, error) {
	if f.honoursErr != nil {
		return nil, f.honoursErr
	}
	return f.honours[name], nil
}

func (f *fakeSports) TeamPlayers(ctx context.Context, teamID string) ([]domain.Player, error) {
	if f.squadErr != nil {
		return nil, f.squadErr
	}
	return f.squads[teamID], nil
}

func (f *fakeSports) LastTeamEvents(ctx context.Context, teamID string) ([]domain.Event, error) {
	return f.results[teamID], nil
}

func newSports() *fakeSports {
	return &fakeSports{
		players: map[string]domain.Player{
			messiID: {ID: messiID, Name: "Lionel Messi", Team: "Inter Miami", Position: "Right Winger", CutoutURL: "https://img/messi.png"},
		},
		teams: map[string]domain.Team{
			"133604": {ID: "133604", Name: "Arsenal", League: "English Premier League", BadgeURL: "https://img/badge.png"},
			messiID:  {ID: messiID, Name: "Same Id FC"},
		},
		honours: map[string][]domain.Honour{
			"Lionel Messi": {{Title: "Ballon d'Or", Season: "2023"}},
		},
		squads: map[string][]domain.Player{
			"133604": {{ID: "34146370", Name: "Bukayo Saka"}},
		},
		results: map[string][]domain.Event{},
	}
}

// failingKV rejects every write when failSet is set.
type failingKV struct {
	*store.Memory
	failSet bool
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Memory.Set(ctx, key, value)
}

func newRepo(kv store.KV) *favorites.Repository {
	return favorites.NewRepository(kv, logger.Nop(), nil)
}

func TestPlayerLoad(t *testing.T) {
	ctx := context.Background()
	src := newSports()
	repo := newRepo(store.NewMemory("test"))
	c := NewPlayerController(src, repo, logger.Nop())

	view := c.Load(ctx, messiID)
	if view.Status != domain.StatusReady || view.Player == nil || view.Player.Name != "Lionel Messi" {
		t.Fatalf("Load() = %+v", view)
	}
	if view.Honours == nil || view.Honours.Status != domain.StatusReady || len(view.Honours.Items) != 1 {
		t.Errorf("Honours = %+v", view.Honours)
	}
	if view.IsFavorite {
		t.Error("IsFavorite = true on an empty store")
	}

	t.Run("not found", func(t *testing.T) {
		view := c.Load(ctx, "0")
		if view.Status != domain.StatusNotFound || view.Player != nil || view.Honours != nil {
			t.Errorf("Load(0) = %+v", view)
		}
	})

	t.Run("provider down", func(t *testing.T) {
		down := newSports()
		down.lookupErr = apperror.RequestFailed("sportsdb", errors.New("timeout"))
		view := NewPlayerController(down, repo, logger.Nop()).Load(ctx, messiID)
		if view.Status != domain.StatusUnavailable {
			t.Errorf("Status = %q, want unavailable", view.Status)
		}
	})

	t.Run("honours failure still renders", func(t *testing.T) {
		partial := newSports()
		partial.honoursErr = apperror.RequestFailed("sportsdb", errors.New("boom"))
		view := NewPlayerController(partial, repo, logger.Nop()).Load(ctx, messiID)
		if view.Status != domain.StatusReady {
			t.Fatalf("Status = %q, want ready", view.Status)
		}
		if view.Honours.Status != domain.StatusUnavailable || view.Honours.Items == nil {
			t.Errorf("Honours = %+v, want unavailable with empty items", view.Honours)
		}
	})

	t.Run("no honours is normal", func(t *testing.T) {
		src.players["1"] = domain.Player{ID: "1", Name: "Nobody"}
		view := c.Load(ctx, "1")
		if view.Honours.Status != domain.StatusEmpty || len(view.Honours.Items) != 0 {
			t.Errorf("Honours = %+v, want empty", view.Honours)
		}
	})
}

func TestPlayerToggle(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(store.NewMemory("test"))
	c := NewPlayerController(newSports(), repo, logger.Nop())

	res, err := c.Toggle(ctx, messiID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !res.IsFavorite || res.Entry == nil || res.Entry.DisplayName != "Lionel Messi" {
		t.Fatalf("Toggle() = %+v", res)
	}
	if res.Entry.ThumbnailURL != "https://img/messi.png" || res.Entry.Metadata[domain.MetaTeam] != "Inter Miami" {
		t.Errorf("entry display fields = %+v", res.Entry)
	}
	if !c.Load(ctx, messiID).IsFavorite {
		t.Error("profile does not agree with the toggle")
	}

	res, err = c.Toggle(ctx, messiID)
	if err != nil || res.IsFavorite {
		t.Fatalf("second Toggle() = (%+v, %v), want removed", res, err)
	}
	if len(repo.LoadAll(ctx)) != 0 {
		t.Errorf("LoadAll() = %v, want empty", repo.LoadAll(ctx))
	}
}

func TestToggleFailuresWriteNothing(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown player", func(t *testing.T) {
		repo := newRepo(store.NewMemory("test"))
		_, err := NewPlayerController(newSports(), repo, logger.Nop()).Toggle(ctx, "0")
		if !errors.Is(err, apperror.ErrNotFound) {
			t.Errorf("Toggle() error = %v, want ErrNotFound", err)
		}
		if len(repo.LoadAll(ctx)) != 0 {
			t.Error("a failed lookup wrote a favorite")
		}
	})

	t.Run("provider down", func(t *testing.T) {
		repo := newRepo(store.NewMemory("test"))
		src := newSports()
		src.lookupErr = apperror.RequestFailed("sportsdb", errors.New("timeout"))
		_, err := NewTeamController(src, repo, logger.Nop()).Toggle(ctx, "133604")
		if !errors.Is(err, apperror.ErrRequestFailed) {
			t.Errorf("Toggle() error = %v, want ErrRequestFailed", err)
		}
		if len(repo.LoadAll(ctx)) != 0 {
			t.Error("a failed lookup wrote a favorite")
		}
	})

	t.Run("write failure", func(t *testing.T) {
		kv := &failingKV{Memory: store.NewMemory("test"), failSet: true}
		_, err := NewPlayerController(newSports(), newRepo(kv), logger.Nop()).Toggle(ctx, messiID)
		if !errors.Is(err, apperror.ErrWriteFailed) {
			t.Errorf("Toggle() error = %v, want ErrWriteFailed", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := NewPlayerController(newSports(), newRepo(store.NewMemory("test")), logger.Nop()).Toggle(ctx, "  ")
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Toggle() error = %v, want ErrValidation", err)
		}
	})
}

func TestToggleInProgress(t *testing.T) {
	ctx := context.Background()
	src := newSports()
	src.block = make(chan struct{})
	repo := newRepo(store.NewMemory("test"))
	c := NewPlayerController(src, repo, logger.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := c.Toggle(ctx, messiID)
		done <- err
	}()

	deadline := time.Now().Add(2 * time.Second)
	for src.lookupCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first toggle never reached the lookup")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := c.Toggle(ctx, messiID); !errors.Is(err, apperror.ErrInProgress) {
		t.Errorf("concurrent Toggle() error = %v, want ErrInProgress", err)
	}

	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("first Toggle() error = %v", err)
	}
	if !repo.IsFavorite(ctx, domain.KindPlayer, messiID) {
		t.Error("first toggle did not add the favorite")
	}

	// The guard is released once the call returns.
	if res, err := c.Toggle(ctx, messiID); err != nil || res.IsFavorite {
		t.Errorf("Toggle() after completion = (%+v, %v)", res, err)
	}
}

func TestTeamLoad(t *testing.T) {
	ctx := context.Background()
	src := newSports()
	src.squadErr = apperror.RequestFailed("sportsdb", errors.New("boom"))
	repo := newRepo(store.NewMemory("test"))
	c := NewTeamController(src, repo, logger.Nop())

	if _, err := c.Toggle(ctx, "133604"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	view := c.Load(ctx, "133604")
	if view.Status != domain.StatusReady || view.Team.Name != "Arsenal" {
		t.Fatalf("Load() = %+v", view)
	}
	if !view.IsFavorite {
		t.Error("IsFavorite = false after toggling on")
	}
	if view.Squad.Status != domain.StatusUnavailable {
		t.Errorf("Squad.Status = %q, want unavailable", view.Squad.Status)
	}
	if view.Results.Status != domain.StatusEmpty {
		t.Errorf("Results.Status = %q, want empty", view.Results.Status)
	}

	if view := c.Load(ctx, "1"); view.Status != domain.StatusNotFound || view.Squad != nil {
		t.Errorf("Load(1) = %+v", view)
	}
}

func TestPlayerAndTeamShareIDSpace(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(store.NewMemory("test"))
	src := newSports()
	players := NewPlayerController(src, repo, logger.Nop())
	teams := NewTeamController(src, repo, logger.Nop())

	if _, err := players.Toggle(ctx, messiID); err != nil {
		t.Fatal(err)
	}
	if _, err := teams.Toggle(ctx, messiID); err != nil {
		t.Fatal(err)
	}
	if n := len(repo.LoadAll(ctx)); n != 2 {
		t.Fatalf("LoadAll() has %d entries, want 2", n)
	}

	if _, err := players.Toggle(ctx, messiID); err != nil {
		t.Fatal(err)
	}
	if players.Load(ctx, messiID).IsFavorite {
		t.Error("player still favorite after removal")
	}
	if !teams.Load(ctx, messiID).IsFavorite {
		t.Error("team with the same id was removed too")
	}
}

func TestLoadTrimsID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(store.NewMemory("test"))
	src := newSports()
	players := NewPlayerController(src, repo, logger.Nop())
	teams := NewTeamController(src, repo, logger.Nop())

	if _, err := players.Toggle(ctx, " "+messiID+" "); err != nil {
		t.Fatal(err)
	}
	if _, err := teams.Toggle(ctx, "133604"); err != nil {
		t.Fatal(err)
	}

	pv := players.Load(ctx, " "+messiID+"\t")
	if pv.Status != domain.StatusReady || !pv.IsFavorite {
		t.Errorf("player Load() = %+v, want ready favorite", pv)
	}
	tv := teams.Load(ctx, "\n133604 ")
	if tv.Status != domain.StatusReady || !tv.IsFavorite {
		t.Errorf("team Load() = %+v, want ready favorite", tv)
	}
}
