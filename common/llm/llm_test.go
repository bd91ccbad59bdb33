package llm_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"unibridge.app/compass/common/llm"
)

var _ = Describe("New", func() {
	It("rejects an empty API key", func() {
		_, err := llm.New(llm.Config{})
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown provider", func() {
		_, err := llm.New(llm.Config{Provider: "palm", APIKey: "k"})
		Expect(err).To(MatchError(ContainSubstring("unsupported LLM provider")))
	})

	It("defaults to OpenAI", func() {
		client, err := llm.New(llm.Config{APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("gpt-4o-mini"))
	})

	It("selects Anthropic when configured", func() {
		client, err := llm.New(llm.Config{Provider: llm.ProviderAnthropic, APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("claude-sonnet-4-5-20250514"))
	})

	It("respects an explicit model", func() {
		client, err := llm.New(llm.Config{APIKey: "k", Model: "gpt-4o"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("gpt-4o"))
	})
})

var _ = Describe("anthropicClient", func() {
	It("reports a schema that cannot be marshalled", func() {
		client, err := llm.New(llm.Config{Provider: llm.ProviderAnthropic, APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())

		var result map[string]any
		_, err = client.Chat(context.Background(), llm.Request{
			SchemaName: "broken",
			Schema:     map[string]any{"properties": make(chan int)},
		}, &result)
		Expect(err).To(MatchError(ContainSubstring("marshal schema")))
	})
})

var _ = Describe("Config", func() {
	It("is disabled without an API key", func() {
		Expect(llm.Config{}.Enabled()).To(BeFalse())
		Expect(llm.Config{APIKey: "k"}.Enabled()).To(BeTrue())
	})
})

var _ = Describe("GenerateSchema", func() {
	type sample struct {
		Score  float64 `json:"score"`
		Reason string  `json:"reason"`
	}

	It("produces a strict object schema", func() {
		schema := llm.GenerateSchema[sample]()
		data, err := json.Marshal(schema)
		Expect(err).NotTo(HaveOccurred())

		var raw map[string]any
		Expect(json.Unmarshal(data, &raw)).To(Succeed())
		Expect(raw["type"]).To(Equal("object"))
		Expect(raw["additionalProperties"]).To(Equal(false))
		Expect(raw["properties"]).To(HaveKey("score"))
		Expect(raw["properties"]).To(HaveKey("reason"))
	})
})
