package backend

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/models"
)

func (b *Backend) initialData(ctx context.Context, p models.Params) (any, error) {
	data := models.InitialData{
		Rooms:    b.catalog.roomNames(),
		Software: slices.Clone(b.catalog.Software),
	}

	if param(p, "renewal_id") == "" {
		return data, nil
	}

	prev, err := b.renewal(ctx, p)
	if err != nil {
		return nil, err
	}
	prev.ActivationKey = ""
	prev.AdminNotes = ""
	data.Renewal = &prev

	return data, nil
}

func (b *Backend) renewal(ctx context.Context, p models.Params) (models.AccessRequest, error) {
	id, err := paramInt64(p, "renewal_id")
	if err != nil {
		return models.AccessRequest{}, err
	}

	prev, err := b.requests.GetRequest(ctx, id)
	if errors.Is(err, store.ErrRequestNotFound) {
		return models.AccessRequest{}, errRenewalNotFound
	}
	return prev, err
}

func (b *Backend) availableComputers(ctx context.Context, p models.Params) (any, error) {
	rooms := b.catalog.Rooms
	if name := param(p, "room"); name != "" {
		room, ok := b.catalog.room(name)
		if !ok {
			return nil, errUnknownRoom
		}
		rooms = []Room{room}
	}

	busy, err := b.busyComputers(ctx)
	if err != nil {
		return nil, err
	}

	computers := make([]models.Computer, 0)
	for _, room := range rooms {
		for _, name := range room.Computers {
			_, taken := busy[computerKey(room.Name, name)]
			computers = append(computers, models.Computer{
				ID:        name,
				Name:      name,
				Room:      room.Name,
				Available: !taken,
			})
		}
	}

	return computers, nil
}

// busyComputers maps every computer held by an active approval to the ID of
// that approval. Approvals without an expiration date never lapse.
func (b *Backend) busyComputers(ctx context.Context) (map[string]int64, error) {
	approved, err := b.requests.ListRequests(ctx, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	today := b.now().Format(models.DateLayout)
	busy := make(map[string]int64, len(approved))
	for _, req := range approved {
		if req.ExpirationDate != "" && req.ExpirationDate < today {
			continue
		}
		busy[computerKey(req.Room, req.Computer)] = req.ID
	}

	return busy, nil
}

func computerKey(room, computer string) string {
	return strings.ToLower(room) + "/" + strings.ToLower(computer)
}

func (b *Backend) branding(context.Context, models.Params) (any, error) {
	return b.catalog.Branding, nil
}

func (b *Backend) checkRestrictions(_ context.Context, p models.Params) (any, error) {
	titles := splitSoftware(param(p, "software"))
	if len(titles) == 0 {
		return nil, errInvalidParam
	}

	restricted := b.catalog.restricted(titles)
	return models.RestrictionCheck{
		Restricted: restricted,
		Allowed:    len(restricted) == 0,
	}, nil
}

// submitRequest stores a new pending request. A renewal may ask for the
// computer its previous approval still holds.
func (b *Backend) submitRequest(ctx context.Context, p models.Params) (any, error) {
	req := models.AccessRequest{
		Name:      param(p, "name"),
		Email:     param(p, "email"),
		Room:      param(p, "room"),
		Computer:  param(p, "computer"),
		Software:  param(p, "software"),
		Purpose:   param(p, "purpose"),
		RenewalOf: param(p, "renewal_id"),
	}
	if err := b.validator.Validate(ctx, req); err != nil {
		return nil, err
	}

	room, ok := b.catalog.room(req.Room)
	if !ok {
		return nil, errUnknownRoom
	}
	if !room.hasComputer(req.Computer) {
		return nil, errUnknownComputer
	}
	req.Room = room.Name

	var renewalID int64
	if req.RenewalOf != "" {
		prev, err := b.renewal(ctx, p)
		if err != nil {
			return nil, err
		}
		renewalID = prev.ID
	}

	busy, err := b.busyComputers(ctx)
	if err != nil {
		return nil, err
	}
	if holder, taken := busy[computerKey(req.Room, req.Computer)]; taken && holder != renewalID {
		return nil, errComputerBusy
	}

	created, err := b.requests.CreateRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	b.logger.Info().
		Int64("request_id", created.ID).
		Str("room", created.Room).
		Str("computer", created.Computer).
		Msg("access request submitted")

	return created, nil
}
