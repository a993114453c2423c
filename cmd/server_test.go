package cmd_test

import (
	"os"

	"sendr/cmd"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Start", func() {
	BeforeEach(func() {
		for _, name := range []string{
			"ETH_NODE_URL",
			"DB_CONNECTION_URL",
			"JWT_SECRET",
			"RELAYER_PRIVATE_KEY",
			"KEYSTORE_SECRET",
			"KEYSTORE_SALT",
		} {
			Expect(os.Unsetenv(name)).To(Succeed())
		}
	})

	When("required configuration is missing", func() {
		It("fails before wiring any collaborator", func() {
			err := cmd.Start()
			Expect(err).To(MatchError(ContainSubstring("is required")))
		})
	})
})
