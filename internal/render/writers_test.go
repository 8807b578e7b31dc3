package render

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/costcocr/costcocr/internal/receipt"
)

var _ = Describe("Registry", func() {
	It("should register the built-in writers", func() {
		Expect(Writers()).To(ContainElements("csv", "default", "json"))
	})

	It("should return a configuration error for an unknown writer", func() {
		_, err := Lookup("yaml")
		Expect(err).To(MatchError(ErrUnknownWriter))
	})

	It("should fail Write before rendering when the writer is unknown", func() {
		out, err := Write("yaml", nil, receipt.New(nil, nil))
		Expect(out).To(BeEmpty())
		Expect(err).To(MatchError(ErrUnknownWriter))
	})

	It("should panic when a name is registered twice", func() {
		Register("registry-test-dup", func(map[string]string) Funcs { return Funcs{} })
		Expect(func() {
			Register("registry-test-dup", func(map[string]string) Funcs { return Funcs{} })
		}).To(Panic())
	})

	It("should panic when registering a nil writer", func() {
		Expect(func() {
			Register("registry-test-nil", nil)
		}).To(Panic())
	})
})

var _ = Describe("Writers", func() {
	var groceries receipt.Receipt

	BeforeEach(func() {
		groceries = receipt.New(
			receipt.Meta{
				receipt.MetaStore:    "Costco",
				receipt.MetaDate:     "Jan 27th",
				receipt.MetaLocation: "Berkeley",
			},
			[]receipt.Item{
				{Name: "Food 1", Cost: 10, Discount: 2.35, Tax: 0.09},
				{Name: "Food 2", Cost: 20, Discount: 4, Tax: 0.09},
			},
		)
	})

	Describe("CSV", func() {
		It("should render comment headers and one comma-joined line per item", func() {
			out, err := Write("csv", nil, groceries)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("# Store: Costco\n# Date: Jan 27th\n# Location: Berkeley\n" +
				"Food 1, 10, 2.35, 0.09\nFood 2, 20, 4, 0.09"))
		})

		It("should render only the items when meta is empty", func() {
			groceries.Meta = receipt.Meta{}
			out, err := Write("csv", nil, groceries)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("Food 1, 10, 2.35, 0.09\nFood 2, 20, 4, 0.09"))
		})
	})

	Describe("JSON", func() {
		It("should render a JSON object with meta and ordered items", func() {
			out, err := Write("json", nil, groceries)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(MatchJSON(`{
				"meta": {"store": "Costco", "date": "Jan 27th", "location": "Berkeley"},
				"items": [
					{"name": "Food 1", "cost": 10, "discount": 2.35, "tax": 0.09},
					{"name": "Food 2", "cost": 20, "discount": 4, "tax": 0.09}
				]
			}`))
		})

		It("should escape item names", func() {
			groceries.Items = []receipt.Item{{Name: `He said "hi"`, Cost: 1}}
			out, err := Write("json", nil, groceries)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(MatchJSON(`{
				"meta": {"store": "Costco", "date": "Jan 27th", "location": "Berkeley"},
				"items": [{"name": "He said \"hi\"", "cost": 1, "discount": 0, "tax": 0}]
			}`))
		})

		It("should render an empty item list as an empty array", func() {
			groceries.Items = nil
			groceries.Meta = receipt.Meta{}
			out, err := Write("json", nil, groceries)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(MatchJSON(`{"meta": {}, "items": []}`))
		})
	})

	Describe("default", func() {
		It("should match the built-in fallback behavior", func() {
			expected, err := Render(Funcs{}, groceries)
			Expect(err).NotTo(HaveOccurred())
			out, err := Write("default", nil, groceries)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(expected))
		})
	})
})
