package memstore

import (
	"context"

	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

// window cuts one page out of an ordered result when bounded pagination is on.
func window[T any](d db, rows []T, p helpers.Page) []T {
	if !d.store.opts.BoundedPagination {
		return rows
	}
	start := min(int(p.Offset()), len(rows))
	end := min(start+p.Limit, len(rows))
	return rows[start:end]
}

// get copies one row out of t, or returns ErrNotFound.
func get[T any](t *table[T], id int64) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

type userRepo struct{ db }

func (r *userRepo) Create(_ context.Context, user *models.User) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	users := r.state().users
	for _, u := range users.rows {
		if u.Username == user.Username {
			return 0, uniqueViolation("users", "users_username_key")
		}
		if u.Email == user.Email {
			return 0, uniqueViolation("users", "users_email_key")
		}
	}

	row := *user
	row.UserID = users.nextID()
	if row.Role == "" {
		row.Role = models.RoleUser
	}
	row.CreatedAt = r.now()
	users.rows[row.UserID] = row
	return row.UserID, nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().users, id)
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *userRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, err := r.find(func(u models.User) bool { return u.Username == username })
	return err == nil, nil
}

func (r *userRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := r.find(func(u models.User) bool { return u.Email == email })
	return err == nil, nil
}

func (r *userRepo) find(match func(models.User) bool) (*models.User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.state().users.rows {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type mediaRepo struct{ db }

func (r *mediaRepo) Create(_ context.Context, media *models.Media) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().media
	row := *media
	row.IDMedia = t.nextID()
	row.CreatedAt = r.now()
	t.rows[row.IDMedia] = row
	return row.IDMedia, nil
}

func (r *mediaRepo) GetByID(_ context.Context, id int64) (*models.Media, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().media, id)
}

func (r *mediaRepo) ListByUser(_ context.Context, userID int64) ([]models.Media, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	out := []models.Media{}
	for _, m := range r.state().media.ordered() {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type textPostRepo struct{ db }

func (r *textPostRepo) Create(_ context.Context, post *models.TextPost) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().textPosts
	row := *post
	row.PostTxtID = t.nextID()
	row.Likes = 0
	row.CreatedAt = r.now()
	t.rows[row.PostTxtID] = row
	return row.PostTxtID, nil
}

func (r *textPostRepo) GetByID(_ context.Context, id int64) (*models.TextPost, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().textPosts, id)
}

func (r *textPostRepo) List(_ context.Context, p helpers.Page) ([]models.TextPost, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return window(r.db, r.state().textPosts.ordered(), p), nil
}

func (r *textPostRepo) IncrementLikes(_ context.Context, id int64) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().textPosts
	row, ok := t.rows[id]
	if !ok {
		return 0, nil
	}
	row.Likes++
	t.rows[id] = row
	return 1, nil
}

type mediaPostRepo struct{ db }

func (r *mediaPostRepo) Create(_ context.Context, post *models.MediaPost) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().mediaPosts
	row := *post
	row.IDPostMedia = t.nextID()
	row.CreatedAt = r.now()
	t.rows[row.IDPostMedia] = row
	return row.IDPostMedia, nil
}

func (r *mediaPostRepo) GetByID(_ context.Context, id int64) (*models.MediaPost, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().mediaPosts, id)
}

func (r *mediaPostRepo) List(_ context.Context, p helpers.Page) ([]models.MediaPost, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return window(r.db, r.state().mediaPosts.ordered(), p), nil
}

type articleRepo struct{ db }

func (r *articleRepo) Create(_ context.Context, article *models.Article) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().articles
	row := *article
	row.IDArticle = t.nextID()
	row.CreatedAt = r.now()
	t.rows[row.IDArticle] = row
	return row.IDArticle, nil
}

func (r *articleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().articles, id)
}

func (r *articleRepo) List(_ context.Context, p helpers.Page) ([]models.Article, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return window(r.db, r.state().articles.ordered(), p), nil
}

type eventRepo struct{ db }

func (r *eventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().events
	row := *event
	row.IDEvent = t.nextID()
	row.CreatedAt = r.now()
	t.rows[row.IDEvent] = row
	return row.IDEvent, nil
}

func (r *eventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().events, id)
}

func (r *eventRepo) List(_ context.Context, p helpers.Page) ([]models.Event, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return window(r.db, r.state().events.ordered(), p), nil
}

func (r *eventRepo) Update(_ context.Context, event *models.Event) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().events
	row, ok := t.rows[event.IDEvent]
	if !ok || row.UserID != event.UserID {
		return 0, nil
	}
	row.Name = event.Name
	row.Date = event.Date
	row.Lieu = event.Lieu
	row.Sport = event.Sport
	row.Genre = event.Genre
	row.NbParticipantsMax = event.NbParticipantsMax
	row.Description = event.Description
	t.rows[row.IDEvent] = row
	return 1, nil
}

// Delete removes the event and, like ON DELETE CASCADE, its participants.
func (r *eventRepo) Delete(_ context.Context, id, ownerID int64) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	st := r.state()
	row, ok := st.events.rows[id]
	if !ok || row.UserID != ownerID {
		return 0, nil
	}
	delete(st.events.rows, id)
	for pid, p := range st.participants.rows {
		if p.EventID == id {
			delete(st.participants.rows, pid)
		}
	}
	return 1, nil
}

func (r *eventRepo) GetMaxParticipants(_ context.Context, id int64) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	row, ok := r.state().events.rows[id]
	if !ok {
		return 0, repositories.ErrNotFound
	}
	return row.NbParticipantsMax, nil
}

type participantRepo struct{ db }

func (r *participantRepo) Exists(_ context.Context, eventID, userID int64) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	_, ok := r.find(eventID, userID)
	return ok, nil
}

// find must be called with the lock held.
func (r *participantRepo) find(eventID, userID int64) (int64, bool) {
	for id, p := range r.state().participants.rows {
		if p.EventID == eventID && p.UserID == userID {
			return id, true
		}
	}
	return 0, false
}

func (r *participantRepo) Add(_ context.Context, eventID, userID int64) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	st := r.state()
	if _, ok := st.events.rows[eventID]; !ok {
		return 0, foreignKeyViolation("event_participants", "event_participants_event_id_fkey")
	}
	if _, ok := r.find(eventID, userID); ok {
		return 0, uniqueViolation("event_participants", "event_participants_event_id_user_id_key")
	}

	row := models.EventParticipant{
		ID:       st.participants.nextID(),
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: r.now(),
	}
	st.participants.rows[row.ID] = row
	return row.ID, nil
}

func (r *participantRepo) Remove(_ context.Context, eventID, userID int64) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	id, ok := r.find(eventID, userID)
	if !ok {
		return 0, nil
	}
	delete(r.state().participants.rows, id)
	return 1, nil
}

func (r *participantRepo) Count(_ context.Context, eventID int64) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	n := 0
	for _, p := range r.state().participants.rows {
		if p.EventID == eventID {
			n++
		}
	}
	return n, nil
}

// ListUsers joins to users the way the SQL version does: participants whose
// user row is gone drop out.
func (r *participantRepo) ListUsers(_ context.Context, eventID int64) ([]models.Participant, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	st := r.state()
	out := []models.Participant{}
	for _, p := range st.participants.ordered() {
		if p.EventID != eventID {
			continue
		}
		u, ok := st.users.rows[p.UserID]
		if !ok {
			continue
		}
		out = append(out, models.Participant{UserID: u.UserID, Username: u.Username})
	}
	return out, nil
}

type sportRepo struct{ db }

func (r *sportRepo) List(_ context.Context) ([]models.SportSummary, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	out := []models.SportSummary{}
	for _, s := range r.state().sports.ordered() {
		out = append(out, models.SportSummary{IDSport: s.IDSport, Name: s.Name})
	}
	return out, nil
}

func (r *sportRepo) GetByID(_ context.Context, id int64) (*models.Sport, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return get(r.state().sports, id)
}

func (r *sportRepo) EnsureExists(_ context.Context, name string, description *string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().sports
	for _, s := range t.rows {
		if s.Name == name {
			return nil
		}
	}
	row := models.Sport{IDSport: t.nextID(), Name: name, Description: description, CreatedAt: r.now()}
	t.rows[row.IDSport] = row
	return nil
}

type profileRepo struct{ db }

func (r *profileRepo) Create(_ context.Context, profile *models.Profile) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().profiles
	for _, p := range t.rows {
		if p.Username == profile.Username {
			return 0, uniqueViolation("profil", "profil_username_key")
		}
	}
	row := *profile
	row.IDProfil = t.nextID()
	row.SportsSuivis = nil
	row.CreatedAt = r.now()
	t.rows[row.IDProfil] = row
	return row.IDProfil, nil
}

func (r *profileRepo) GetByUsername(_ context.Context, username string) (*models.Profile, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.state().profiles.rows {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *profileRepo) UpdateSportsSuivis(_ context.Context, username string, sportsSuivis *string) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t := r.state().profiles
	var n int64
	for id, p := range t.rows {
		if p.Username == username {
			p.SportsSuivis = sportsSuivis
			t.rows[id] = p
			n++
		}
	}
	return n, nil
}
