package catalog

import "toolrouter/internal/models"

// BaseTools is the compiled-in tool snapshot used to seed the store and as
// the fallback when the store is unreachable.
var BaseTools = []models.Tool{
	// Visual tools
	{
		Name:        "Midjourney v7",
		Category:    models.CategoryVisual,
		Description: "AI image generation with cinematic quality art and visuals",
		URL:         "https://www.midjourney.com",
		Pricing:     models.Pricing{Free: false, Freemium: false, PaidOnly: true, StartingPrice: 10, Currency: "USD"},
		BestFor:     []string{"artistic images", "cinematic visuals", "concept art", "poster design"},
		Strength:    9.8,
		Features:    []string{"Draft mode", "voice control", "Discord integration", "commercial rights"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "ChatGPT (GPT-4o Image)",
		Category:    models.CategoryVisual,
		Description: "Best-in-class text accuracy and UI design image generation",
		URL:         "https://chat.openai.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"UI wireframes", "diagrams", "text rendering", "signage"},
		Strength:    9.7,
		Features:    []string{"Perfect text accuracy", "instruction following", "multi-step editing"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "DALL-E 3",
		Category:    models.CategoryVisual,
		Description: "Photorealistic image generation integrated with ChatGPT",
		URL:         "https://openai.com/dall-e-3",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"photorealistic images", "precise prompts", "text integration"},
		Strength:    9.5,
		Features:    []string{"Unlimited generation", "commercial rights", "aspect ratios", "GPT-4 access"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Google Imagen 4",
		Category:    models.CategoryVisual,
		Description: "Fast and realistic image generation by Google AI",
		URL:         "https://deepmind.google/technologies/imagen-4/",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 0.035, Currency: "USD"},
		BestFor:     []string{"photorealism", "fast generation", "Google ecosystem"},
		Strength:    9.4,
		Features:    []string{"2K resolution", "SynthID watermarking", "multi-aspect ratio"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Adobe Firefly Image 4",
		Category:    models.CategoryVisual,
		Description: "Brand-safe AI image editing and creation",
		URL:         "https://firefly.adobe.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 9.99, Currency: "USD"},
		BestFor:     []string{"brand-safe editing", "commercial use", "Adobe integration"},
		Strength:    9.2,
		Features:    []string{"C2PA credentials", "IP indemnity", "4000 credits/month", "legal training data"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Stable Diffusion XL",
		Category:    models.CategoryVisual,
		Description: "Open source, customizable image generation",
		URL:         "https://stability.ai",
		Pricing:     models.Pricing{Free: true, Freemium: false, PaidOnly: false, StartingPrice: 0, Currency: "USD"},
		BestFor:     []string{"high-volume generation", "customization", "offline use"},
		Strength:    9.0,
		Features:    []string{"Open source", "unlimited use", "ControlNet", "LoRA training", "1024x1024"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Flux.1 Pro",
		Category:    models.CategoryVisual,
		Description: "Fast, high quality image generation",
		URL:         "https://flux-ai.io",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 7.99, Currency: "USD"},
		BestFor:     []string{"fast generation", "high quality", "batch processing"},
		Strength:    8.9,
		Features:    []string{"$0.04/image API", "Kontext editing", "10x faster", "commercial rights"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Leonardo AI",
		Category:    models.CategoryVisual,
		Description: "Affordable AI image creation for teams",
		URL:         "https://leonardo.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 12, Currency: "USD"},
		BestFor:     []string{"team collaboration", "custom models", "game assets"},
		Strength:    8.8,
		Features:    []string{"8500 tokens/month", "private generation", "10 custom models", "canvas"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Ideogram 2.0",
		Category:    models.CategoryVisual,
		Description: "AI image tool with excellent text rendering",
		URL:         "https://ideogram.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 7, Currency: "USD"},
		BestFor:     []string{"text rendering", "posters", "typography", "logos"},
		Strength:    8.7,
		Features:    []string{"Character consistency", "image upload", "400 priority credits", "batch generation"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Canva AI (Magic Studio)",
		Category:    models.CategoryVisual,
		Description: "Design and editing platform with 25+ AI features",
		URL:         "https://www.canva.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 10, Currency: "USD"},
		BestFor:     []string{"social media", "presentations", "branding", "marketing"},
		Strength:    8.5,
		Features:    []string{"Magic Design", "140M+ assets", "1TB storage", "Brand Kit", "Background Remover"},
		LastUpdated: "2025-11-28",
	},

	// Text tools
	{
		Name:        "ChatGPT (GPT-5)",
		Category:    models.CategoryText,
		Description: "The most capable general-purpose AI chat and writing assistant",
		URL:         "https://chat.openai.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"content writing", "research", "coding", "creative writing", "analysis"},
		Strength:    9.9,
		Features:    []string{"GPT-5", "image generation", "web browsing", "custom GPTs", "voice mode", "data analysis"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Claude AI (Claude 4)",
		Category:    models.CategoryText,
		Description: "Superior AI for long-form analysis and writing",
		URL:         "https://claude.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"long documents", "analysis", "coding", "research", "safety"},
		Strength:    9.7,
		Features:    []string{"200K context", "Projects", "Artifacts", "Constitutional AI", "document analysis"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Gemini 2.5 Pro",
		Category:    models.CategoryText,
		Description: "Google's multimodal AI platform",
		URL:         "https://gemini.google.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 19.99, Currency: "USD"},
		BestFor:     []string{"multimodal tasks", "Google integration", "research", "code"},
		Strength:    9.5,
		Features:    []string{"1M token context", "Deep Research", "NotebookLM", "Workspace integration"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Jasper AI",
		Category:    models.CategoryText,
		Description: "AI writing tool specialized in marketing content",
		URL:         "https://www.jasper.ai",
		Pricing:     models.Pricing{Free: false, Freemium: false, PaidOnly: true, StartingPrice: 39, Currency: "USD"},
		BestFor:     []string{"marketing copy", "SEO content", "brand voice", "campaigns"},
		Strength:    9.0,
		Features:    []string{"Brand Voice", "50+ templates", "SEO mode", "team collaboration", "API"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Copy.ai",
		Category:    models.CategoryText,
		Description: "AI content automation for marketing teams",
		URL:         "https://www.copy.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 29, Currency: "USD"},
		BestFor:     []string{"ad copy", "sales emails", "GTM workflows", "automation"},
		Strength:    8.8,
		Features:    []string{"Workflows", "5 seats", "unlimited chat", "500 workflow credits"},
		LastUpdated: "2025-11-28",
	},

	// Code tools
	{
		Name:        "GitHub Copilot",
		Category:    models.CategoryCode,
		Description: "AI code completion by Microsoft and OpenAI",
		URL:         "https://github.com/features/copilot",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 10, Currency: "USD"},
		BestFor:     []string{"code completion", "function generation", "test cases", "documentation"},
		Strength:    9.7,
		Features:    []string{"Real-time suggestions", "multi-IDE support", "chat feature", "GPT-4"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Cursor",
		Category:    models.CategoryCode,
		Description: "Advanced AI code editor built on VS Code",
		URL:         "https://cursor.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"multi-file edits", "codebase queries", "AI agent mode"},
		Strength:    9.6,
		Features:    []string{"GPT-4 & Claude integration", "agent mode", ".cursorrules", "$20 API credits"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Claude Code (Anthropic)",
		Category:    models.CategoryCode,
		Description: "Terminal-based deep code analysis tool",
		URL:         "https://claude.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"terminal coding", "code explanation", "documentation generation"},
		Strength:    9.5,
		Features:    []string{"Multi-file editing", "terminal commands", "deep codebase understanding"},
		LastUpdated: "2025-11-28",
	},

	// Audio tools
	{
		Name:        "ElevenLabs",
		Category:    models.CategoryAudio,
		Description: "The most realistic AI voice cloning and TTS platform",
		URL:         "https://elevenlabs.io",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 5, Currency: "USD"},
		BestFor:     []string{"voice cloning", "audiobooks", "dubbing", "voice agents"},
		Strength:    9.8,
		Features:    []string{"10K+ voices", "70+ languages", "voice cloning", "API", "music generation"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Murf.ai",
		Category:    models.CategoryAudio,
		Description: "Professional AI voiceover platform",
		URL:         "https://murf.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 23, Currency: "USD"},
		BestFor:     []string{"voiceovers", "presentations", "e-learning", "ads"},
		Strength:    9.2,
		Features:    []string{"200+ voices", "pitch/speed control", "dubbing", "voice cloning", "text-to-speech"},
		LastUpdated: "2025-11-28",
	},

	// Video tools
	{
		Name:        "Sora 2 (OpenAI)",
		Category:    models.CategoryVideo,
		Description: "The most advanced AI video generation model",
		URL:         "https://openai.com/sora",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"cinematic videos", "storytelling", "marketing", "filmmaking"},
		Strength:    9.9,
		Features:    []string{"20s videos", "1080p", "spatial audio", "draft mode", "voice control"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Google Veo 3",
		Category:    models.CategoryVideo,
		Description: "Fast and high quality AI video generation",
		URL:         "https://deepmind.google/technologies/veo/",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 19.99, Currency: "USD"},
		BestFor:     []string{"fast generation", "high quality", "Google integration"},
		Strength:    9.7,
		Features:    []string{"$0.15-0.40/second", "Veo 3 Fast", "audio synthesis"},
		LastUpdated: "2025-11-28",
	},

	// Research tools
	{
		Name:        "Perplexity AI",
		Category:    models.CategoryResearch,
		Description: "AI powered search and research engine",
		URL:         "https://www.perplexity.ai",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 20, Currency: "USD"},
		BestFor:     []string{"research", "fact-checking", "cited answers", "deep research"},
		Strength:    9.5,
		Features:    []string{"Real-time search", "citations", "GPT-4 access", "Pro Search", "unlimited queries"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Elicit AI",
		Category:    models.CategoryResearch,
		Description: "Academic paper analysis and literature review",
		URL:         "https://elicit.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 10, Currency: "USD"},
		BestFor:     []string{"literature review", "data extraction", "systematic reviews"},
		Strength:    9.2,
		Features:    []string{"125M+ papers", "2400 extractions/year", "20 columns", "research alerts"},
		LastUpdated: "2025-11-28",
	},

	// Data tools
	{
		Name:        "Tableau",
		Category:    models.CategoryData,
		Description: "Industry standard data visualization platform",
		URL:         "https://www.tableau.com",
		Pricing:     models.Pricing{Free: false, Freemium: false, PaidOnly: true, StartingPrice: 15, Currency: "USD"},
		BestFor:     []string{"enterprise BI", "data visualization", "dashboards", "analytics"},
		Strength:    9.6,
		Features:    []string{"Interactive dashboards", "Einstein AI", "70+ data sources", "mobile analytics"},
		LastUpdated: "2025-11-28",
	},
	{
		Name:        "Microsoft Power BI",
		Category:    models.CategoryData,
		Description: "AI assisted BI tool for the Microsoft ecosystem",
		URL:         "https://powerbi.microsoft.com",
		Pricing:     models.Pricing{Free: true, Freemium: true, PaidOnly: false, StartingPrice: 14, Currency: "USD"},
		BestFor:     []string{"Microsoft users", "business intelligence", "corporate reporting"},
		Strength:    9.5,
		Features:    []string{"Copilot AI", "natural language Q&A", "forecasting", "Excel integration"},
		LastUpdated: "2025-11-28",
	},
}
