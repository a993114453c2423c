package resolver_test

import (
	"context"
	"errors"

	"sendr/internal/repository"
	"sendr/internal/resolver"
	"sendr/internal/resolver/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver", func() {
	var (
		fakeRepo *fake.Repository
		rslv     *resolver.Resolver
		ctx      context.Context
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		rslv = resolver.NewResolver(fakeRepo, "@sendr")
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Classify", func() {
		It("classifies a suffixed handle as an alias", func() {
			Expect(rslv.Classify("maria@sendr")).To(Equal(resolver.KindAlias))
		})

		It("classifies aliases case-insensitively", func() {
			Expect(rslv.Classify("MARIA@SENDR")).To(Equal(resolver.KindAlias))
		})

		It("classifies a plus-prefixed number as a phone", func() {
			Expect(rslv.Classify("+14155550100")).To(Equal(resolver.KindPhone))
		})

		It("classifies a 0x hex string as an address", func() {
			Expect(rslv.Classify("0x8ba1f109551bD432803012645Ac136ddd64DBA72")).To(Equal(resolver.KindAddress))
		})

		It("prefers the alias suffix over other shapes", func() {
			// suffixed but malformed handles never fall through to address parsing
			Expect(rslv.Classify("0xabc@sendr")).To(Equal(resolver.KindUnknown))
		})

		It("rejects handles outside the length bounds", func() {
			Expect(rslv.Classify("ab@sendr")).To(Equal(resolver.KindUnknown))
		})

		It("rejects phone numbers without a plus prefix", func() {
			Expect(rslv.Classify("14155550100")).To(Equal(resolver.KindUnknown))
		})

		It("rejects malformed addresses", func() {
			Expect(rslv.Classify("0x1234")).To(Equal(resolver.KindUnknown))
		})
	})

	Describe("Resolve", func() {
		var (
			resolved resolver.Resolved
			err      error
		)

		When("the identifier is an alias", func() {
			JustBeforeEach(func() {
				resolved, err = rslv.Resolve(ctx, "Maria@sendr")
			})

			When("the alias exists and is active", func() {
				BeforeEach(func() {
					fakeRepo.GetAliasByHandleReturns(repository.AddressAlias{
						AccountID:     "acc-1",
						Handle:        "maria",
						WalletAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
						Active:        true,
					}, nil)
					fakeRepo.GetAccountByIDReturns(repository.Account{
						ID:      "acc-1",
						Phone:   "+14155550100",
						Country: "US",
					}, nil)
				})

				It("resolves to the aliased wallet", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(resolved.Address).To(Equal("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
					Expect(resolved.AccountID).To(Equal("acc-1"))
					Expect(resolved.Country).To(Equal("US"))
					Expect(resolved.Method).To(Equal(resolver.KindAlias))

					_, handle := fakeRepo.GetAliasByHandleArgsForCall(0)
					Expect(handle).To(Equal("maria"))
				})
			})

			When("the alias does not exist", func() {
				BeforeEach(func() {
					fakeRepo.GetAliasByHandleReturns(repository.AddressAlias{}, repository.ErrAliasNotFound)
				})

				It("returns unknown alias", func() {
					Expect(err).To(MatchError(resolver.ErrUnknownAlias))
				})
			})

			When("the alias is inactive", func() {
				BeforeEach(func() {
					fakeRepo.GetAliasByHandleReturns(repository.AddressAlias{
						Handle: "maria",
						Active: false,
					}, nil)
				})

				It("returns unknown alias", func() {
					Expect(err).To(MatchError(resolver.ErrUnknownAlias))
				})
			})

			When("account metadata cannot be loaded", func() {
				BeforeEach(func() {
					fakeRepo.GetAliasByHandleReturns(repository.AddressAlias{
						AccountID:     "acc-1",
						Handle:        "maria",
						WalletAddress: "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
						Active:        true,
					}, nil)
					fakeRepo.GetAccountByIDReturns(repository.Account{}, fakeErr)
				})

				It("still resolves without the metadata", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(resolved.Address).To(Equal("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
					Expect(resolved.Country).To(BeEmpty())
				})
			})
		})

		When("the identifier is a phone number", func() {
			JustBeforeEach(func() {
				resolved, err = rslv.Resolve(ctx, "+14155550100")
			})

			When("the account and wallet exist", func() {
				BeforeEach(func() {
					fakeRepo.GetAccountByPhoneReturns(repository.Account{
						ID:      "acc-2",
						Phone:   "+14155550100",
						Country: "NG",
					}, nil)
					fakeRepo.GetWalletByAccountIDReturns(repository.Wallet{
						AccountID: "acc-2",
						Address:   "0x1111111111111111111111111111111111111111",
					}, nil)
				})

				It("resolves to the account's wallet", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(resolved.Address).To(Equal("0x1111111111111111111111111111111111111111"))
					Expect(resolved.Phone).To(Equal("+14155550100"))
					Expect(resolved.Country).To(Equal("NG"))
					Expect(resolved.Method).To(Equal(resolver.KindPhone))
				})
			})

			When("no account owns the number", func() {
				BeforeEach(func() {
					fakeRepo.GetAccountByPhoneReturns(repository.Account{}, repository.ErrAccountNotFound)
				})

				It("returns no account for phone", func() {
					Expect(err).To(MatchError(resolver.ErrNoAccountForPhone))
				})
			})

			When("the account has no wallet", func() {
				BeforeEach(func() {
					fakeRepo.GetAccountByPhoneReturns(repository.Account{ID: "acc-2"}, nil)
					fakeRepo.GetWalletByAccountIDReturns(repository.Wallet{}, repository.ErrWalletNotFound)
				})

				It("returns no account for phone", func() {
					Expect(err).To(MatchError(resolver.ErrNoAccountForPhone))
				})
			})
		})

		When("the identifier is a raw address", func() {
			JustBeforeEach(func() {
				resolved, err = rslv.Resolve(ctx, "0x8ba1f109551bd432803012645ac136ddd64dba72")
			})

			When("the address belongs to no system user", func() {
				BeforeEach(func() {
					fakeRepo.GetWalletByAddressReturns(repository.Wallet{}, repository.ErrWalletNotFound)
				})

				It("passes the checksummed address through", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(resolved.Address).To(Equal("0x8ba1f109551bD432803012645Ac136ddd64DBA72"))
					Expect(resolved.AccountID).To(BeEmpty())
					Expect(resolved.Method).To(Equal(resolver.KindAddress))
				})
			})

			When("the address belongs to a system wallet", func() {
				BeforeEach(func() {
					fakeRepo.GetWalletByAddressReturns(repository.Wallet{
						AccountID: "acc-3",
						Address:   "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
					}, nil)
					fakeRepo.GetAccountByIDReturns(repository.Account{
						ID:      "acc-3",
						Country: "US",
					}, nil)
				})

				It("enriches the destination with account metadata", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(resolved.AccountID).To(Equal("acc-3"))
					Expect(resolved.Country).To(Equal("US"))
				})
			})

			When("the wallet lookup fails", func() {
				BeforeEach(func() {
					fakeRepo.GetWalletByAddressReturns(repository.Wallet{}, fakeErr)
				})

				It("returns the error", func() {
					Expect(err).To(MatchError(fakeErr))
				})
			})
		})

		When("the identifier matches nothing", func() {
			It("returns invalid recipient", func() {
				_, err := rslv.Resolve(ctx, "not-a-recipient")
				Expect(err).To(MatchError(resolver.ErrInvalidRecipient))
			})
		})
	})
})
