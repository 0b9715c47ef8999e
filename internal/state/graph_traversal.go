package state

import (
	"sort"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// populateCommits walks everything reachable from HEAD and the branches and
// emits the commits oldest first.
func populateCommits(repo *gogit.Repository, state *GraphState, meta map[plumbing.Hash]commitMeta) error {
	var queue []plumbing.Hash

	if h, err := repo.Head(); err == nil {
		queue = append(queue, h.Hash())
	}
	bIter, err := repo.Branches()
	if err != nil {
		return err
	}
	if err := bIter.ForEach(func(r *plumbing.Reference) error {
		queue = append(queue, r.Hash())
		return nil
	}); err != nil {
		return err
	}

	seen := make(map[plumbing.Hash]bool)
	var collected []*object.Commit

	// BFS
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if seen[current] {
			continue
		}
		seen[current] = true

		c, err := repo.CommitObject(current)
		if err != nil {
			return err
		}
		collected = append(collected, c)
		queue = append(queue, c.ParentHashes...)
	}

	// Replay assigns strictly increasing committer times, so this is creation order.
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Committer.When.Before(collected[j].Committer.When)
	})

	for _, c := range collected {
		m := meta[c.Hash]
		node := Commit{
			ID:        c.Hash.String(),
			Hash:      m.hash,
			Message:   c.Message,
			Branch:    m.branch,
			Timestamp: c.Committer.When.Format(time.RFC3339),
			Revert:    m.revert,
			Teammate:  m.teammate,
		}
		if len(c.ParentHashes) > 0 {
			node.ParentID = c.ParentHashes[0].String()
		}
		if len(c.ParentHashes) > 1 {
			node.SecondParentID = c.ParentHashes[1].String()
		}
		state.Commits = append(state.Commits, node)
	}
	return nil
}
