package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// InitialCommitMessage labels the implicit root commit every graph starts from.
const InitialCommitMessage = "Initial Commit"

// graphEpoch anchors commit timestamps so identical histories always
// produce identical commit IDs.
var graphEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const graphAuthor = "Dev"

// GraphState is the renderer-facing projection of one history
type GraphState struct {
	Title       string            `json:"title"`
	Local       bool              `json:"local"`
	Visible     bool              `json:"visible"`
	CommitCount int               `json:"commitCount"`
	Commits     []Commit          `json:"commits"`
	Branches    map[string]string `json:"branches"`
	HEAD        Head              `json:"HEAD"`
}

// Commit represents a commit node for visualization
type Commit struct {
	ID             string `json:"id"`
	Hash           string `json:"hash,omitempty"` // display hash of the originating operation
	Message        string `json:"message"`
	ParentID       string `json:"parentId"`
	SecondParentID string `json:"secondParentId,omitempty"` // For merge commits
	Branch         string `json:"branch"`
	Timestamp      string `json:"timestamp"`
	Revert         bool   `json:"revert,omitempty"`
	Teammate       bool   `json:"teammate,omitempty"`
}

type Head struct {
	Type string `json:"type"` // "branch" or "commit"
	Ref  string `json:"ref,omitempty"`
	ID   string `json:"id,omitempty"`
}

type commitMeta struct {
	branch   string
	hash     string
	revert   bool
	teammate bool
}

// replayer rebuilds a repository from an operation sequence.
type replayer struct {
	repo    *gogit.Repository
	tree    plumbing.Hash
	current string
	tick    int
	meta    map[plumbing.Hash]commitMeta
}

// BuildGraph replays ops into a fresh in-memory repository and returns the
// resulting graph. Nothing is kept between calls: the same ops always yield
// the same graph.
func BuildGraph(ops History, title string, local bool) (*GraphState, error) {
	r, err := newReplayer()
	if err != nil {
		return nil, err
	}
	for i, op := range ops {
		if err := r.apply(op); err != nil {
			return nil, fmt.Errorf("replay operation %d (%s): %w", i, op.Kind, err)
		}
	}

	state := &GraphState{
		Title:       title,
		Local:       local,
		CommitCount: ops.CommitCount(),
		Commits:     []Commit{},
		Branches:    make(map[string]string),
	}
	state.Visible = local || state.CommitCount > 0

	populateHEAD(r.repo, state)
	if err := populateBranches(r.repo, state); err != nil {
		return nil, err
	}
	if err := populateCommits(r.repo, state, r.meta); err != nil {
		return nil, err
	}
	return state, nil
}

func newReplayer() (*replayer, error) {
	repo, err := gogit.Init(memory.NewStorage(), memfs.New())
	if err != nil {
		return nil, fmt.Errorf("init graph repository: %w", err)
	}

	r := &replayer{
		repo:    repo,
		current: DefaultBranch,
		meta:    make(map[plumbing.Hash]commitMeta),
	}

	obj := repo.Storer.NewEncodedObject()
	if err := (&object.Tree{}).Encode(obj); err != nil {
		return nil, err
	}
	if r.tree, err = repo.Storer.SetEncodedObject(obj); err != nil {
		return nil, err
	}

	root, err := r.commit(InitialCommitMessage)
	if err != nil {
		return nil, err
	}
	r.meta[root] = commitMeta{branch: DefaultBranch}
	if err := r.setTip(DefaultBranch, root); err != nil {
		return nil, err
	}
	if err := r.checkout(DefaultBranch); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *replayer) apply(op Operation) error {
	switch op.Kind {
	case KindCommit:
		parent, err := r.tip(r.current)
		if err != nil {
			return err
		}
		msg := op.Arg
		if msg == "" {
			msg = "(no message)"
		}
		h, err := r.commit(msg, parent)
		if err != nil {
			return err
		}
		r.meta[h] = commitMeta{
			branch:   r.current,
			hash:     op.Hash,
			revert:   strings.Contains(op.Input, "revert"),
			teammate: strings.Contains(op.Input, "Teammate"),
		}
		return r.setTip(r.current, h)

	case KindBranch:
		if op.Arg == "" || r.exists(op.Arg) {
			return nil
		}
		return r.branchFromCurrent(op.Arg)

	case KindCheckout:
		if op.Arg == "" {
			return nil
		}
		if !r.exists(op.Arg) {
			if err := r.branchFromCurrent(op.Arg); err != nil {
				return err
			}
		}
		return r.checkout(op.Arg)

	case KindMerge:
		if op.Arg == "" || op.Arg == r.current || !r.exists(op.Arg) {
			return nil
		}
		ours, err := r.tip(r.current)
		if err != nil {
			return err
		}
		theirs, err := r.tip(op.Arg)
		if err != nil {
			return err
		}
		parents := []plumbing.Hash{ours}
		if theirs != ours {
			parents = append(parents, theirs)
		}
		h, err := r.commit(fmt.Sprintf("Merge branch '%s'", op.Arg), parents...)
		if err != nil {
			return err
		}
		r.meta[h] = commitMeta{branch: r.current}
		return r.setTip(r.current, h)
	}
	return nil
}

// commit writes an empty-tree commit object with the given parents.
func (r *replayer) commit(msg string, parents ...plumbing.Hash) (plumbing.Hash, error) {
	sig := object.Signature{
		Name:  graphAuthor,
		Email: "dev@gitflowsim.local",
		When:  graphEpoch.Add(time.Duration(r.tick) * time.Second),
	}
	r.tick++

	c := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      msg,
		TreeHash:     r.tree,
		ParentHashes: parents,
	}
	obj := r.repo.Storer.NewEncodedObject()
	if err := c.Encode(obj); err != nil {
		return plumbing.ZeroHash, err
	}
	return r.repo.Storer.SetEncodedObject(obj)
}

func (r *replayer) tip(branch string) (plumbing.Hash, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("branch %s: %w", branch, err)
	}
	return ref.Hash(), nil
}

func (r *replayer) exists(branch string) bool {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	return err == nil
}

func (r *replayer) setTip(branch string, h plumbing.Hash) error {
	return r.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName(branch), h))
}

func (r *replayer) branchFromCurrent(name string) error {
	h, err := r.tip(r.current)
	if err != nil {
		return err
	}
	return r.setTip(name, h)
}

func (r *replayer) checkout(branch string) error {
	r.current = branch
	return r.repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch)))
}

func populateHEAD(repo *gogit.Repository, state *GraphState) {
	ref, err := repo.Head()
	if err != nil {
		state.HEAD = Head{Type: "branch", Ref: DefaultBranch}
		return
	}
	if ref.Name().IsBranch() {
		state.HEAD = Head{Type: "branch", Ref: ref.Name().Short(), ID: ref.Hash().String()}
	} else {
		state.HEAD = Head{Type: "commit", ID: ref.Hash().String()}
	}
}

func populateBranches(repo *gogit.Repository, state *GraphState) error {
	iter, err := repo.Branches()
	if err != nil {
		return err
	}
	return iter.ForEach(func(r *plumbing.Reference) error {
		state.Branches[r.Name().Short()] = r.Hash().String()
		return nil
	})
}
