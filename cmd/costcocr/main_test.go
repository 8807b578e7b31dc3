package main

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCLI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Costcocr CLI Suite")
}

var _ = Describe("parseVars", func() {
	It("should return an empty map for an empty string", func() {
		vars, err := parseVars("")
		Expect(err).NotTo(HaveOccurred())
		Expect(vars).To(BeEmpty())
	})

	It("should parse a single pair", func() {
		vars, err := parseVars("currency=USD")
		Expect(err).NotTo(HaveOccurred())
		Expect(vars).To(Equal(map[string]string{"currency": "USD"}))
	})

	It("should parse multiple comma-separated pairs", func() {
		vars, err := parseVars("currency=USD,title=Groceries")
		Expect(err).NotTo(HaveOccurred())
		Expect(vars).To(Equal(map[string]string{
			"currency": "USD",
			"title":    "Groceries",
		}))
	})

	It("should keep everything after the first equals sign as the value", func() {
		vars, err := parseVars("note=a=b")
		Expect(err).NotTo(HaveOccurred())
		Expect(vars).To(Equal(map[string]string{"note": "a=b"}))
	})

	It("should reject a pair without an equals sign", func() {
		_, err := parseVars("currency")
		Expect(err).To(HaveOccurred())
	})

	It("should reject an empty key", func() {
		_, err := parseVars("=USD")
		Expect(err).To(HaveOccurred())
	})

	It("should reject a value with a comma as two pairs, not silently truncate", func() {
		// Commas always separate pairs, so "title=a, b" is "title=a" plus a
		// malformed " b" segment and must error rather than drop data.
		_, err := parseVars("title=a, b")
		Expect(err).To(HaveOccurred())
	})
})
