package resolver

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"sendr/internal/repository"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUnknownAlias error = errors.New("unknown alias")
var ErrNoAccountForPhone error = errors.New("no account for phone number")
var ErrInvalidRecipient error = errors.New("recipient identifier not recognized")

// Kind is the explicit classification of a recipient identifier. Call sites
// switch on it exhaustively instead of sniffing string shapes.
type Kind int

const (
	KindUnknown Kind = iota
	KindAlias
	KindPhone
	KindAddress
)

func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindPhone:
		return "phone"
	case KindAddress:
		return "address"
	default:
		return "unknown"
	}
}

var (
	aliasHandlePattern = regexp.MustCompile(`^[a-z]{3,50}$`)
	phonePattern       = regexp.MustCompile(`^\+[0-9]{6,15}$`)
	addressPattern     = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Resolved is a canonical destination. AccountID, Phone and Country are empty
// when the destination is not a system user (raw external address).
type Resolved struct {
	Address   string
	AccountID string
	Phone     string
	Country   string
	Method    Kind
}

type Resolver struct {
	repo   Repository
	suffix string // alias suffix, e.g. "@sendr"
}

func NewResolver(repo Repository, aliasSuffix string) *Resolver {
	return &Resolver{
		repo:   repo,
		suffix: strings.ToLower(aliasSuffix),
	}
}

// Classify maps an identifier onto its Kind. Priority order is fixed: alias,
// then phone, then raw address.
func (r *Resolver) Classify(identifier string) Kind {
	identifier = strings.TrimSpace(identifier)

	if handle, ok := strings.CutSuffix(strings.ToLower(identifier), r.suffix); ok {
		if aliasHandlePattern.MatchString(handle) {
			return KindAlias
		}
		return KindUnknown
	}
	if phonePattern.MatchString(identifier) {
		return KindPhone
	}
	if addressPattern.MatchString(identifier) {
		return KindAddress
	}
	return KindUnknown
}

// Resolve normalizes a user-supplied identifier into a canonical destination
// address. Pure read; nothing is written anywhere.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (Resolved, error) {
	identifier = strings.TrimSpace(identifier)

	switch r.Classify(identifier) {
	case KindAlias:
		return r.resolveAlias(ctx, identifier)
	case KindPhone:
		return r.resolvePhone(ctx, identifier)
	case KindAddress:
		return r.resolveAddress(ctx, identifier)
	default:
		return Resolved{}, fmt.Errorf("%w: %q", ErrInvalidRecipient, identifier)
	}
}

func (r *Resolver) resolveAlias(ctx context.Context, identifier string) (Resolved, error) {
	handle := strings.TrimSuffix(strings.ToLower(identifier), r.suffix)

	alias, err := r.repo.GetAliasByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrAliasNotFound) {
			return Resolved{}, ErrUnknownAlias
		}
		return Resolved{}, fmt.Errorf("look up alias: %w", err)
	}
	if !alias.Active {
		return Resolved{}, ErrUnknownAlias
	}

	resolved := Resolved{
		Address:   alias.WalletAddress,
		AccountID: alias.AccountID,
		Method:    KindAlias,
	}
	r.fillAccount(ctx, &resolved, alias.AccountID)
	return resolved, nil
}

func (r *Resolver) resolvePhone(ctx context.Context, phone string) (Resolved, error) {
	account, err := r.repo.GetAccountByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return Resolved{}, ErrNoAccountForPhone
		}
		return Resolved{}, fmt.Errorf("look up account by phone: %w", err)
	}

	wallet, err := r.repo.GetWalletByAccountID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return Resolved{}, ErrNoAccountForPhone
		}
		return Resolved{}, fmt.Errorf("look up wallet for account: %w", err)
	}

	return Resolved{
		Address:   wallet.Address,
		AccountID: account.ID,
		Phone:     account.Phone,
		Country:   account.Country,
		Method:    KindPhone,
	}, nil
}

// resolveAddress takes a raw address as-is; the recipient need not be a
// system user, so absence of a wallet is not an error.
func (r *Resolver) resolveAddress(ctx context.Context, address string) (Resolved, error) {
	resolved := Resolved{
		Address: common.HexToAddress(address).Hex(),
		Method:  KindAddress,
	}

	wallet, err := r.repo.GetWalletByAddress(ctx, resolved.Address)
	if err == nil {
		resolved.AccountID = wallet.AccountID
		r.fillAccount(ctx, &resolved, wallet.AccountID)
	} else if !errors.Is(err, repository.ErrWalletNotFound) {
		return Resolved{}, fmt.Errorf("look up wallet by address: %w", err)
	}

	return resolved, nil
}

// fillAccount enriches a resolved destination with owning-account metadata.
// Missing metadata never fails a resolve.
func (r *Resolver) fillAccount(ctx context.Context, resolved *Resolved, accountID string) {
	account, err := r.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return
	}
	resolved.Phone = account.Phone
	resolved.Country = account.Country
}
