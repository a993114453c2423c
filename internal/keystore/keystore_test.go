package keystore_test

import (
	"encoding/base64"

	"sendr/internal/keystore"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KeyStore", func() {
	var store *keystore.KeyStore

	BeforeEach(func() {
		var err error
		store, err = keystore.New("test-secret", "test-salt")
		Expect(err).NotTo(HaveOccurred())
	})

	It("round-trips key material", func() {
		sealed, err := store.Encrypt([]byte("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"))
		Expect(err).NotTo(HaveOccurred())

		opened, err := store.Decrypt(sealed)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(opened)).To(Equal("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"))
	})

	It("produces a different ciphertext per encryption", func() {
		first, err := store.Encrypt([]byte("secret"))
		Expect(err).NotTo(HaveOccurred())
		second, err := store.Encrypt([]byte("secret"))
		Expect(err).NotTo(HaveOccurred())

		Expect(first).NotTo(Equal(second))
	})

	It("rejects tampered ciphertext", func() {
		sealed, err := store.Encrypt([]byte("secret"))
		Expect(err).NotTo(HaveOccurred())

		raw, err := base64.StdEncoding.DecodeString(sealed)
		Expect(err).NotTo(HaveOccurred())
		raw[len(raw)-1] ^= 0x01

		_, err = store.Decrypt(base64.StdEncoding.EncodeToString(raw))
		Expect(err).To(MatchError(keystore.ErrMalformedCiphertext))
	})

	It("rejects garbage input", func() {
		_, err := store.Decrypt("not-base64!!!")
		Expect(err).To(MatchError(keystore.ErrMalformedCiphertext))

		_, err = store.Decrypt("c2hvcnQ=")
		Expect(err).To(MatchError(keystore.ErrMalformedCiphertext))
	})

	It("refuses decryption under a different secret", func() {
		sealed, err := store.Encrypt([]byte("secret"))
		Expect(err).NotTo(HaveOccurred())

		other, err := keystore.New("other-secret", "test-salt")
		Expect(err).NotTo(HaveOccurred())

		_, err = other.Decrypt(sealed)
		Expect(err).To(MatchError(keystore.ErrMalformedCiphertext))
	})

	Describe("Zero", func() {
		It("wipes the slice in place", func() {
			material := []byte{1, 2, 3}
			keystore.Zero(material)
			Expect(material).To(Equal([]byte{0, 0, 0}))
		})
	})
})
