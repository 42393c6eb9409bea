package client

// DefaultModel is the model used when no override is configured.
const DefaultModel = "openrouter/cypher-alpha:free"

var defaultModels = []Model{
	{Display: "Cypher Alpha", API: "openrouter/cypher-alpha:free"},
	{Display: "Mistral Small 3.2 24B", API: "mistralai/mistral-small-3.2-24b-instruct:free"},
	{Display: "Kimi Dev 72b", API: "moonshotai/kimi-dev-72b:free"},
	{Display: "DeepSeek R1 0528 Qwen3 8B", API: "deepseek/deepseek-r1-0528-qwen3-8b:free"},
	{Display: "DeepSeek R1 0528", API: "deepseek/deepseek-r1-0528:free"},
	{Display: "Sarvam-M", API: "sarvamai/sarvam-m:free"},
	{Display: "Devstral Small", API: "mistralai/devstral-small:free"},
	{Display: "Qwen3 30B A3B", API: "qwen/qwen3-30b-a3b:free"},
	{Display: "Qwen3 8B", API: "qwen/qwen3-8b:free"},
	{Display: "Qwen3 14B", API: "qwen/qwen3-14b:free"},
	{Display: "Qwen3 32B", API: "qwen/qwen3-32b:free"},
	{Display: "Qwen3 235B A22B", API: "qwen/qwen3-235b-a22b:free"},
	{Display: "DeepSeek R1T Chimera", API: "tngtech/deepseek-r1t-chimera:free"},
	{Display: "GLM-Z1-32B-0414", API: "thudm/glm-z1-32b:free"},
	{Display: "GLM-4-32B-0414", API: "thudm/glm-4-32b:free"},
	{Display: "DeepCoder-14B-Preview", API: "agentica-org/deepcoder-14b-preview:free"},
	{Display: "Llama 3.3 Nemotron Super 49B v1", API: "nvidia/llama-3.3-nemotron-super-49b-v1:free"},
	{Display: "Qwerky 72B", API: "featherless/qwerky-72b:free"},
	{Display: "Mistral Small 3.1 24B", API: "mistralai/mistral-small-3.1-24b-instruct:free"},
	{Display: "Llama 3.3 70B Instruct", API: "meta-llama/llama-3.3-70b-instruct:free"},
	{Display: "Qwen2.5 Coder 32B Instruct", API: "qwen/qwen2.5-coder-32b-instruct:free"},
	{Display: "Qwen2.5 72B Instruct", API: "qwen/qwen2.5-72b-instruct:free"},
	{Display: "Mistral Nemo", API: "mistralai/mistral-nemo:free"},
	{Display: "Gemma 2 9B", API: "google/gemma-2-9b:free"},
	{Display: "Mistral 7B Instruct", API: "mistralai/mistral-7b-instruct:free"},
}

// DefaultModels returns the compiled-in model list, used when the live list
// cannot be fetched.
func DefaultModels() []Model {
	models := make([]Model, len(defaultModels))
	copy(models, defaultModels)
	return models
}
