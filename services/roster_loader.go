package services

import (
	"context"
	"fmt"
	"log"

	"github.com/harshu1705/NSSS-Certificate/core"
	"github.com/harshu1705/NSSS-Certificate/repositories"
	"github.com/harshu1705/NSSS-Certificate/utils/redislog"
)

// RosterSnapshot is the outcome of the one startup load.
// Err is non-nil (wrapping core.ErrRosterUnavailable) when the resource could
// not be read; Roster is then empty and every lookup fails closed.
type RosterSnapshot struct {
	Roster core.Roster
	Err    error
}

// LoadRoster performs exactly one read of the roster resource.
func LoadRoster(ctx context.Context, repo repositories.RosterRepository, rlog *redislog.Logger) RosterSnapshot {
	names, err := repo.Names(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %v", core.ErrRosterUnavailable, err)
		log.Printf("[roster] %v; every lookup will report name not found", err)
		rlog.Error("roster load failed", redislog.Fields{"err": err.Error()})
		return RosterSnapshot{Err: err}
	}

	r := core.NewRoster(names)
	log.Printf("[roster] loaded %d records, %d distinct names", len(names), r.Len())
	rlog.Infof("roster loaded: %d names", redislog.Fields{"records": fmt.Sprint(len(names))}, r.Len())
	return RosterSnapshot{Roster: r}
}
