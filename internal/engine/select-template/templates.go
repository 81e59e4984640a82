// internal/engine/select-template/templates.go
package selecttemplate

import "toolrouter/internal/models"

// builtinTemplates is the hand-authored workflow library. Triggers stay
// bilingual because user queries arrive in either language; everything else
// is presentation text.
var builtinTemplates = []models.WorkflowTemplate{
	// ============================================
	// COMIC CREATION
	// ============================================
	{
		ID:          "comic-creation",
		Name:        "Comic Creation",
		NameEN:      "Comic Creation",
		Description: "Full pipeline from story writing to a finished comic",
		Triggers: []string{
			"comic", "çizgi roman", "manga", "graphic novel",
			"webtoon", "karikatür hikaye", "çizgi hikaye",
		},
		Complexity:        "complex",
		EstimatedDuration: "4-8 hours",
		Tags:              []string{"creative", "visual", "storytelling"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Story & Concept Development",
				Description:  "Create the main story, characters and plot",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"creative writing", "story", "character development"},
				PromptTemplate: "I want to develop a story for a [GENRE] comic.\n" +
					"Theme: [THEME]\nAudience: [AUDIENCE]\n\n" +
					"Please produce:\n" +
					"1. Main characters (with visual descriptions)\n" +
					"2. Story summary (setup, development, resolution)\n" +
					"3. List of key scenes/moments (for [X] pages)",
			},
			{
				Order:        2,
				Name:         "Script & Panel Breakdown",
				Description:  "Write a detailed panel-by-panel script",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"script writing", "formatting", "dialogue"},
				PromptTemplate: "Convert this story into comic script format:\n\n" +
					"Format:\n- Page X, Panel Y\n- Visual description (including camera angle)\n" +
					"- Dialogue/thought balloons\n- Sound effects\n\n" +
					"Target: [X] pages, 4-6 panels per page",
			},
			{
				Order:        3,
				Name:         "Character Design",
				Description:  "Create consistent character reference art",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"character design", "concept art", "illustration"},
				PromptTemplate: "Character reference sheet of [CHARACTER NAME], [VISUAL DESCRIPTION], " +
					"comic art style, full body front view, 3/4 view, expression sheet, " +
					"color palette, white background, detailed --ar 16:9",
			},
			{
				Order:        4,
				Name:         "Panel & Scene Generation",
				Description:  "Generate artwork for each panel",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"image generation", "scene composition", "dynamic poses"},
				PromptTemplate: "Comic panel: [SCENE DESCRIPTION], [ART STYLE], " +
					"[CAMERA ANGLE], dramatic lighting, speech bubble space in [POSITION] --ar 3:4",
				Tips: []string{
					"Use character references with --cref (Midjourney)",
					"Keep a consistent style across panels",
					"Leave room for dialogue balloons",
				},
			},
			{
				Order:        5,
				Name:         "Layout & Lettering",
				Description:  "Arrange panels, add dialogue, finalize",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaDocument,
				Capabilities: []string{"layout", "typography", "design", "comic lettering"},
				Tips: []string{
					"Use distinct fonts for dialogue and narration",
					"Position speech balloons per panel",
					"Export PDF for print, PNG for web",
				},
			},
		},
	},

	// ============================================
	// VIDEO PRODUCTION
	// ============================================
	{
		ID:          "video-production",
		Name:        "Video Production",
		NameEN:      "Video Production",
		Description: "Full production pipeline from script to finished video",
		Triggers: []string{
			"video", "film", "video çek", "video yap", "reklam videosu",
			"tanıtım filmi", "youtube video", "kısa film", "video içerik",
		},
		Complexity:        "complex",
		EstimatedDuration: "3-6 hours",
		Tags:              []string{"video", "creative", "marketing"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Script & Storyboard",
				Description:  "Write the video script and visual plan",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"script writing", "storyboard", "creative writing"},
				PromptTemplate: "Write a script for a [DURATION]-minute [GENRE] video.\n" +
					"Topic: [TOPIC]\nAudience: [AUDIENCE]\nTone: [TONE]\n\n" +
					"Output format:\n- Scene number\n- Duration\n- Visual description\n" +
					"- Voiceover/dialogue\n- Music/sound notes",
			},
			{
				Order:        2,
				Name:         "Visual Generation",
				Description:  "Generate video footage or stills",
				Category:     models.CategoryVideo,
				InputType:    models.MediaText,
				OutputType:   models.MediaVideo,
				Capabilities: []string{"video generation", "animation", "visual effects"},
				PromptTemplate: "[SCENE DESCRIPTION], cinematic, [CAMERA MOVEMENT], " +
					"professional lighting, [STYLE], high quality --duration [X]s",
			},
			{
				Order:        3,
				Name:         "Voiceover",
				Description:  "Professional voiceover or text to speech",
				Category:     models.CategoryAudio,
				InputType:    models.MediaText,
				OutputType:   models.MediaAudio,
				Capabilities: []string{"voice synthesis", "text to speech", "dubbing"},
				Tips: []string{
					"Prepare the script as plain text",
					"Pick a voice tone that fits the audience",
					"Use punctuation for natural pauses",
				},
			},
			{
				Order:        4,
				Name:         "Music & Sound Effects",
				Description:  "Add background music and sound effects",
				Category:     models.CategoryAudio,
				InputType:    models.MediaText,
				OutputType:   models.MediaAudio,
				Capabilities: []string{"music generation", "sound effects", "audio"},
				PromptTemplate: "Create an instrumental track in [GENRE] style, [MOOD] mood, " +
					"[DURATION] long. Tempo: [BPM]",
				Optional: true,
			},
		},
	},

	// ============================================
	// BRAND IDENTITY
	// ============================================
	{
		ID:          "brand-identity",
		Name:        "Brand Identity",
		NameEN:      "Brand Identity",
		Description: "Complete brand identity from logo to color palette",
		Triggers: []string{
			"brand identity", "marka kimliği", "branding", "kurumsal kimlik",
			"logo ve marka", "marka oluştur", "marka tasarımı", "startup branding",
		},
		Complexity:        "complex",
		EstimatedDuration: "3-5 hours",
		Tags:              []string{"branding", "design", "business"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Brand Strategy & Research",
				Description:  "Analyze brand values, audience and positioning",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"research", "strategy", "analysis"},
				PromptTemplate: "Create a brand strategy for [BRAND NAME]:\n\n" +
					"Industry: [INDUSTRY]\nAudience: [AUDIENCE]\nCompetitors: [COMPETITORS]\n\n" +
					"Deliverables:\n1. Brand values and mission\n2. Audience personas\n" +
					"3. Brand voice and tone\n4. Differentiators",
			},
			{
				Order:        2,
				Name:         "Logo Design",
				Description:  "Create the primary logo and variations",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"logo design", "branding", "typography"},
				PromptTemplate: "Minimalist logo design for [BRAND NAME], [INDUSTRY] company, " +
					"[STYLE] style, [COLOR PREFERENCE], professional, scalable, " +
					"white background, vector-ready --ar 1:1",
			},
			{
				Order:        3,
				Name:         "Color Palette & Typography",
				Description:  "Define brand colors and typefaces",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"color palette", "typography", "design system"},
				PromptTemplate: "Brand color palette with 5 colors: primary, secondary, " +
					"accent, neutral, and highlight. [MOOD] feeling, [INDUSTRY] industry. " +
					"Include HEX codes, color names, and usage guidelines.",
				Tips: []string{
					"Primary color plus two supporting, a neutral and an accent",
					"Color codes for both digital and print",
					"Check accessibility contrast",
				},
			},
			{
				Order:        4,
				Name:         "Brand Guidelines",
				Description:  "Usage guide tying all elements together",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaDocument,
				Capabilities: []string{"documentation", "guidelines", "templates"},
				PromptTemplate: "Create brand usage guidelines for [BRAND NAME]:\n\n" +
					"1. Logo usage rules (minimum size, clear space, forbidden uses)\n" +
					"2. Color usage (primary and secondary colors, gradients)\n" +
					"3. Typography rules (heading, subheading, body)\n" +
					"4. Voice and tone examples\n5. Social media templates",
			},
		},
	},

	// ============================================
	// PODCAST CREATION
	// ============================================
	{
		ID:          "podcast-creation",
		Name:        "Podcast Creation",
		NameEN:      "Podcast Creation",
		Description: "From topic to a publish-ready podcast episode",
		Triggers: []string{
			"podcast", "podcast yap", "podcast bölümü", "ses içerik",
			"audio content", "radyo programı", "sesli içerik",
		},
		Complexity:        "medium",
		EstimatedDuration: "2-4 hours",
		Tags:              []string{"audio", "content", "media"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Topic Research & Script",
				Description:  "Research the episode topic and write talking points",
				Category:     models.CategoryResearch,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"research", "script writing", "content planning"},
				PromptTemplate: "For a [DURATION]-minute podcast episode about [TOPIC]:\n\n" +
					"1. Topic research and key points\n" +
					"2. Episode structure (intro, main segments, outro)\n" +
					"3. Talking points and transitions\n" +
					"4. Interesting anecdotes or statistics",
			},
			{
				Order:        2,
				Name:         "Recording / Voiceover",
				Description:  "Record audio or generate it with AI",
				Category:     models.CategoryAudio,
				InputType:    models.MediaText,
				OutputType:   models.MediaAudio,
				Capabilities: []string{"voice synthesis", "recording", "text to speech"},
				Tips: []string{
					"Add pauses for a natural speaking pace",
					"Pick a conversational tone that fits podcasts",
					"Use separate voice settings for intro and outro",
				},
			},
			{
				Order:        3,
				Name:         "Audio Editing & Mastering",
				Description:  "Clean up, edit and polish the audio",
				Category:     models.CategoryAudio,
				InputType:    models.MediaAudio,
				OutputType:   models.MediaAudio,
				Capabilities: []string{"audio editing", "noise reduction", "mastering"},
				Tips: []string{
					"Remove background noise",
					"Normalize volume levels",
					"Add intro music and a jingle",
				},
			},
			{
				Order:        4,
				Name:         "Cover Art & Distribution",
				Description:  "Podcast cover and platform distribution",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"cover art", "design", "social media"},
				PromptTemplate: "Podcast cover art for \"[PODCAST NAME]\", episode about [TOPIC], " +
					"modern design, bold typography, [COLOR SCHEME], " +
					"1:1 aspect ratio, podcast platform ready",
				Optional: true,
			},
		},
	},

	// ============================================
	// BLOG CONTENT
	// ============================================
	{
		ID:          "blog-content",
		Name:        "Blog Content Creation",
		NameEN:      "Blog Content Creation",
		Description: "SEO-friendly blog post enriched with visuals",
		Triggers: []string{
			"blog", "blog yaz", "blog yazısı", "makale yaz", "içerik üret",
			"seo content", "article", "blog post", "içerik pazarlama",
		},
		Complexity:        "simple",
		EstimatedDuration: "1-2 hours",
		Tags:              []string{"content", "writing", "marketing"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Research & Outline",
				Description:  "Topic research and article structure",
				Category:     models.CategoryResearch,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"research", "seo", "content planning"},
				PromptTemplate: "For an SEO-focused blog post about [TOPIC]:\n\n" +
					"1. Keyword research\n2. Competitor content analysis\n" +
					"3. Title suggestions (5 options)\n4. Detailed outline\n" +
					"5. Target word count: [X] words",
			},
			{
				Order:        2,
				Name:         "Content Writing",
				Description:  "Write a fluent, SEO-friendly article",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"content writing", "seo", "copywriting"},
				PromptTemplate: "Write a [X]-word blog post from this outline:\n\n[OUTLINE]\n\n" +
					"Requirements:\n- Keyword placement for SEO\n" +
					"- Readable paragraphs (3-4 sentences)\n- H2 and H3 headings\n" +
					"- Calls to action\n- Summary and conclusion",
			},
			{
				Order:        3,
				Name:         "Image Creation",
				Description:  "Featured image and in-article visuals",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"blog images", "featured image", "infographic"},
				PromptTemplate: "Blog header image for article about [TOPIC], " +
					"modern editorial style, [COLOR SCHEME], professional, " +
					"no text overlay needed --ar 16:9",
				Optional: true,
			},
		},
	},

	// ============================================
	// E-BOOK CREATION
	// ============================================
	{
		ID:          "ebook-creation",
		Name:        "E-book Creation",
		NameEN:      "E-book Creation",
		Description: "From idea to a publish-ready e-book",
		Triggers: []string{
			"ebook", "e-kitap", "kitap yaz", "kitap oluştur", "dijital kitap",
			"kindle", "epub", "pdf kitap",
		},
		Complexity:        "complex",
		EstimatedDuration: "8-20 hours",
		Tags:              []string{"writing", "publishing", "content"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Outline & Chapter Plan",
				Description:  "Plan the book structure and chapters",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"outline", "planning", "structure"},
				PromptTemplate: "I want to write an e-book about [TOPIC].\n" +
					"Target reader: [AUDIENCE]\nEstimated length: [X] chapters\n\n" +
					"Produce:\n1. Title suggestions (5 options)\n2. Subtitle\n" +
					"3. Chapter titles with short descriptions\n" +
					"4. Key points per chapter",
			},
			{
				Order:        2,
				Name:         "Content Writing",
				Description:  "Write the chapters in full",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"long form writing", "storytelling", "educational content"},
				PromptTemplate: "Expand this chapter outline into full content:\n\n" +
					"Chapter: [CHAPTER NAME]\nKey points: [POINTS]\n\n" +
					"Requirements:\n- Around [X] words\n- Organized with subheadings\n" +
					"- Examples and practical advice\n- Transition sentence into the next chapter",
			},
			{
				Order:        3,
				Name:         "Cover Design",
				Description:  "Create a professional book cover",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"book cover", "design", "typography"},
				PromptTemplate: "E-book cover design for \"[BOOK NAME]\", " +
					"[GENRE] genre, [AUDIENCE] audience, " +
					"professional, modern typography, [COLOR SCHEME], " +
					"bestseller quality --ar 2:3",
			},
			{
				Order:        4,
				Name:         "Editing & Formatting",
				Description:  "Final edit and conversion to e-book formats",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaDocument,
				Capabilities: []string{"editing", "formatting", "epub"},
				Tips: []string{
					"Use consistent heading styles",
					"Add a table of contents",
					"Test in both Kindle and EPUB formats",
				},
			},
		},
	},

	// ============================================
	// YOUTUBE VIDEO
	// ============================================
	{
		ID:          "youtube-video",
		Name:        "YouTube Video Production",
		NameEN:      "YouTube Video Production",
		Description: "Full YouTube workflow from thumbnail to SEO",
		Triggers: []string{
			"youtube", "youtube video", "youtuber", "youtube kanalı",
			"youtube içerik", "vlog", "tutorial video",
		},
		Complexity:        "complex",
		EstimatedDuration: "4-8 hours",
		Tags:              []string{"youtube", "video", "content"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Topic & SEO Research",
				Description:  "Find topics with viral potential and keywords",
				Category:     models.CategoryResearch,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"seo", "research", "trend analysis"},
				PromptTemplate: "Topic research for a YouTube video in the [NICHE] niche:\n\n" +
					"1. Five trending video ideas\n" +
					"2. Per idea: title, description, tags\n" +
					"3. Competitor analysis (top 3 videos)\n" +
					"4. Estimated view potential\n" +
					"5. Hook ideas (first 5 seconds)",
			},
			{
				Order:        2,
				Name:         "Script & Shot List",
				Description:  "Video script and shooting plan",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"script writing", "youtube", "hook"},
				PromptTemplate: "Script for a [DURATION]-minute YouTube video:\n\n" +
					"Topic: [TOPIC]\nFormat: [TUTORIAL/VLOG/REVIEW/...]\n\n" +
					"Script format:\n- HOOK (0-15s): grab the viewer\n" +
					"- INTRO (15-30s): what they will learn\n" +
					"- MAIN CONTENT: split into sections\n" +
					"- CTA: subscribe, like, comment\n- OUTRO: next video teaser",
			},
			{
				Order:        3,
				Name:         "Thumbnail Design",
				Description:  "Clickable, attention-grabbing thumbnail",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"thumbnail", "youtube", "click-worthy"},
				PromptTemplate: "YouTube thumbnail for video about [TOPIC], " +
					"eye-catching, bold text \"[SHORT TITLE]\", " +
					"expressive face or reaction, bright colors, " +
					"high contrast, professional --ar 16:9",
				Tips: []string{
					"A facial expression raises click-through rate",
					"Use at most three words of text",
					"Pick contrasting colors",
				},
			},
			{
				Order:        4,
				Name:         "Video Production",
				Description:  "B-roll, effects and editing",
				Category:     models.CategoryVideo,
				InputType:    models.MediaText,
				OutputType:   models.MediaVideo,
				Capabilities: []string{"video editing", "b-roll", "effects"},
				Tips: []string{
					"Change visuals every 5-7 seconds",
					"Add subtitles, they raise watch time",
					"Keep music around -20dB",
				},
			},
			{
				Order:        5,
				Name:         "SEO & Publishing",
				Description:  "Title, description, tags and scheduling",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"seo", "youtube optimization", "scheduling"},
				PromptTemplate: "YouTube video SEO optimization:\n\nVideo: [VIDEO TOPIC]\n\n" +
					"Produce:\n1. SEO title (60 characters)\n" +
					"2. Description (with timestamps, 5000 characters)\n" +
					"3. Fifteen related tags\n4. Pinned comment suggestion\n" +
					"5. End screen and card strategy",
			},
		},
	},

	// ============================================
	// LOGO DESIGN
	// ============================================
	{
		ID:          "logo-design",
		Name:        "Logo Design",
		NameEN:      "Logo Design",
		Description: "Professional logo from concept to final files",
		Triggers: []string{
			"logo", "logo tasarla", "logo yap", "logo oluştur",
			"amblem", "marka logosu", "şirket logosu",
		},
		Complexity:        "simple",
		EstimatedDuration: "1-2 hours",
		Tags:              []string{"design", "branding", "logo"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Concept & Brief",
				Description:  "Define logo requirements and direction",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"branding", "concept", "brief"},
				PromptTemplate: "Create a logo brief for [BRAND/COMPANY NAME]:\n\n" +
					"Industry: [INDUSTRY]\nAudience: [AUDIENCE]\nCompetitors: [COMPETITORS]\n" +
					"Preferred style: [MINIMAL/MODERN/CLASSIC/PLAYFUL]\n\n" +
					"Output:\n1. Three distinct concept directions\n" +
					"2. Visual descriptions per concept\n" +
					"3. Color suggestions\n4. Typography style",
			},
			{
				Order:        2,
				Name:         "Logo Generation",
				Description:  "Generate logo variations with AI",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"logo design", "vector", "branding"},
				PromptTemplate: "Minimalist logo for [BRAND NAME], [INDUSTRY], " +
					"[CONCEPT DESCRIPTION], " +
					"clean lines, scalable, professional, " +
					"[COLOR] color scheme, white background, " +
					"vector style --ar 1:1",
				Tips: []string{
					"Generate at least three variations",
					"Test a black-and-white version too",
					"Check legibility at small sizes",
				},
			},
			{
				Order:        3,
				Name:         "Variations & Finalization",
				Description:  "Color variations and file formats",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaImage,
				Capabilities: []string{"variations", "color schemes", "export"},
				Tips: []string{
					"Dark and light background versions",
					"Prepare SVG, PNG and PDF formats",
					"Include a favicon size (32x32) version",
				},
			},
		},
	},

	// ============================================
	// SOCIAL MEDIA CAMPAIGN
	// ============================================
	{
		ID:          "social-media-campaign",
		Name:        "Social Media Campaign",
		NameEN:      "Social Media Campaign",
		Description: "Planned, consistent social media content package",
		Triggers: []string{
			"sosyal medya", "social media", "instagram", "kampanya",
			"sosyal medya içerik", "post", "içerik takvimi",
		},
		Complexity:        "medium",
		EstimatedDuration: "3-5 hours",
		Tags:              []string{"social media", "marketing", "content"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Strategy & Content Calendar",
				Description:  "Campaign plan and content calendar",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"strategy", "content calendar", "planning"},
				PromptTemplate: "A [DURATION]-day social media campaign for [BRAND]:\n\n" +
					"Goal: [GOAL - sales/awareness/engagement]\n" +
					"Platform: [INSTAGRAM/TWITTER/LINKEDIN/TIKTOK]\n" +
					"Posts per day: [X]\n\n" +
					"Produce:\n1. Campaign theme and hashtags\n" +
					"2. Content pillars (educational, fun, sales, UGC)\n" +
					"3. Daily content calendar\n4. Copy suggestions per post",
			},
			{
				Order:        2,
				Name:         "Visual Templates",
				Description:  "Templates in consistent brand visuals",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"social media graphics", "templates", "design"},
				PromptTemplate: "Social media post template for [BRAND], " +
					"[PLATFORM] optimized, [COLOR SCHEME], " +
					"modern, clean, branded, space for text, " +
					"professional marketing aesthetic --ar 1:1",
			},
			{
				Order:        3,
				Name:         "Carousel & Story Content",
				Description:  "Carousel posts and story visuals",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"carousel", "stories", "swipe content"},
				PromptTemplate: "Instagram carousel slide [X/5], topic: [TOPIC], " +
					"[BRAND] branding, educational infographic style, " +
					"clean typography, [COLOR] palette, " +
					"social media optimized --ar 1:1",
				Tips: []string{
					"Eight to ten slides per carousel is ideal",
					"One idea per slide",
					"Last slide should carry a CTA",
				},
			},
			{
				Order:        4,
				Name:         "Copywriting & Hashtags",
				Description:  "Copy and hashtags for every post",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"copywriting", "hashtags", "engagement"},
				PromptTemplate: "Write copy for [X] [PLATFORM] posts:\n\n" +
					"Per post:\n1. Hook (attention-grabbing first line)\n" +
					"2. Main message (value/information)\n3. CTA (call to action)\n" +
					"4. 20-30 relevant hashtags (niche plus general)\n5. Emoji usage",
			},
		},
	},

	// ============================================
	// PRODUCT PHOTOGRAPHY
	// ============================================
	{
		ID:          "product-photography",
		Name:        "Product Photography",
		NameEN:      "Product Photography",
		Description: "E-commerce quality product visuals",
		Triggers: []string{
			"ürün fotoğraf", "product photo", "e-ticaret görsel",
			"amazon", "ürün çekim", "product shot", "ürün görseli",
		},
		Complexity:        "simple",
		EstimatedDuration: "1-3 hours",
		Tags:              []string{"ecommerce", "product", "photography"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Background Removal",
				Description:  "Produce a clean white background",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaImage,
				Capabilities: []string{"background removal", "cutout", "clean"},
				Tips: []string{
					"Amazon requires a white background",
					"Optional shadow avoids a floating look",
					"At least 1000x1000px resolution",
				},
			},
			{
				Order:        2,
				Name:         "Lifestyle Composition",
				Description:  "Show the product in a usage scenario",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaImage,
				Capabilities: []string{"lifestyle", "composition", "scene generation"},
				PromptTemplate: "Product lifestyle shot: [PRODUCT] in use, " +
					"[SCENARIO - kitchen/office/outdoors], " +
					"natural lighting, professional photography, " +
					"aspirational, high-end aesthetic --ar 4:3",
				Tips: []string{
					"Pick a setting that reflects the audience",
					"Product stays the focal point",
					"Create 3-5 lifestyle variations",
				},
			},
			{
				Order:        3,
				Name:         "Infographic & Feature Shot",
				Description:  "Visual highlighting product features",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaImage,
				Capabilities: []string{"infographic", "product features", "callouts"},
				Tips: []string{
					"Show at most five key features",
					"Use icons, keep text short",
					"Mark with arrows and lines",
				},
			},
		},
	},

	// ============================================
	// MUSIC PRODUCTION
	// ============================================
	{
		ID:          "music-production",
		Name:        "Music Production",
		NameEN:      "Music Production",
		Description: "Create an original music track",
		Triggers: []string{
			"müzik", "şarkı", "music", "beat", "melodi",
			"müzik yap", "şarkı yaz", "jingle", "soundtrack",
		},
		Complexity:        "medium",
		EstimatedDuration: "2-4 hours",
		Tags:              []string{"music", "audio", "creative"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Concept & Lyrics",
				Description:  "Create the theme, mood and lyrics",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"songwriting", "lyrics", "creative writing"},
				PromptTemplate: "Write song lyrics in [GENRE] style:\n\n" +
					"Theme: [THEME]\nMood: [HAPPY/SAD/ENERGETIC/ROMANTIC]\n" +
					"Structure: Verse - Chorus - Verse - Chorus - Bridge - Chorus\n\n" +
					"Requirements:\n- Catchy hook/chorus\n- Consistent rhyme scheme\n" +
					"- In [LANGUAGE]\n- Around [X] minutes",
			},
			{
				Order:        2,
				Name:         "Melody & Beat Generation",
				Description:  "Generate the music with AI",
				Category:     models.CategoryAudio,
				InputType:    models.MediaText,
				OutputType:   models.MediaAudio,
				Capabilities: []string{"music generation", "beat making", "melody"},
				PromptTemplate: "[GENRE] style instrumental track, " +
					"[TEMPO] BPM, [KEY] key, " +
					"[MOOD] atmosphere, [INSTRUMENTS], " +
					"professional mix, radio ready",
				Tips: []string{
					"Use Suno or Udio",
					"Generate together with the lyrics",
					"Try several variations",
				},
			},
			{
				Order:        3,
				Name:         "Audio Editing",
				Description:  "Mix, master and final touches",
				Category:     models.CategoryAudio,
				InputType:    models.MediaAudio,
				OutputType:   models.MediaAudio,
				Capabilities: []string{"mixing", "mastering", "audio editing"},
				Tips: []string{
					"Loudness standard: -14 LUFS (Spotify)",
					"Compare against a reference track",
					"Export WAV and MP3",
				},
			},
			{
				Order:        4,
				Name:         "Cover Art",
				Description:  "Album or single cover art",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"album art", "cover design", "music visual"},
				PromptTemplate: "Album cover art for \"[SONG NAME]\", " +
					"[GENRE] music genre aesthetic, " +
					"[MOOD] atmosphere, artistic, professional, " +
					"minimal text, streaming platform ready --ar 1:1",
				Optional: true,
			},
		},
	},

	// ============================================
	// PRESENTATION
	// ============================================
	{
		ID:          "presentation",
		Name:        "Presentation Creation",
		NameEN:      "Presentation Creation",
		Description: "A polished, professional presentation",
		Triggers: []string{
			"sunum", "presentation", "slayt", "powerpoint",
			"pitch deck", "keynote", "prezentasyon",
		},
		Complexity:        "simple",
		EstimatedDuration: "1-3 hours",
		Tags:              []string{"presentation", "business", "slides"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Content & Flow Plan",
				Description:  "Presentation structure and key messages",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"presentation", "outline", "storytelling"},
				PromptTemplate: "Content for a [X]-slide presentation about [TOPIC]:\n\n" +
					"Audience: [AUDIENCE]\nDuration: [X] minutes\n" +
					"Goal: [PERSUADE/INFORM/TEACH]\n\n" +
					"Per slide:\n- Title\n- Key message (one sentence)\n" +
					"- Supporting bullets\n- Visual suggestion",
			},
			{
				Order:        2,
				Name:         "Slide Design",
				Description:  "Visually striking slides",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"slide design", "presentation graphics", "infographic"},
				PromptTemplate: "Presentation slide design, topic: [TOPIC], " +
					"modern corporate style, [COLOR SCHEME], " +
					"clean layout, data visualization, " +
					"professional, minimal text --ar 16:9",
				Tips: []string{
					"One slide, one idea",
					"At most six bullet points",
					"Large visuals, little text",
				},
			},
			{
				Order:        3,
				Name:         "Final Edit & Export",
				Description:  "Transitions, animations and output file",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaDocument,
				Capabilities: []string{"presentation", "animation", "export"},
				Tips: []string{
					"Subtle animations are enough",
					"Keep a PDF backup",
					"Embed the fonts",
				},
			},
		},
	},

	// ============================================
	// TRANSLATION & LOCALIZATION
	// ============================================
	{
		ID:          "translation-localization",
		Name:        "Translation & Localization",
		NameEN:      "Translation & Localization",
		Description: "Professional translation and cultural adaptation",
		Triggers: []string{
			"çeviri", "translation", "localization", "lokalizasyon",
			"tercüme", "dil çeviri", "metin çevir",
		},
		Complexity:        "simple",
		EstimatedDuration: "1-4 hours",
		Tags:              []string{"translation", "language", "localization"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Source Analysis",
				Description:  "Text analysis and terminology extraction",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"analysis", "terminology", "glossary"},
				PromptTemplate: "Analyze this text for translation:\n\n[TEXT]\n\n" +
					"Output:\n1. Technical terms with suggested translations\n" +
					"2. Cultural references\n3. Tone and style notes\n" +
					"4. Potential difficulties",
			},
			{
				Order:        2,
				Name:         "Translation",
				Description:  "The main translation pass",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"translation", "language", "localization"},
				PromptTemplate: "Translate this text from [SOURCE LANGUAGE] to [TARGET LANGUAGE]:\n\n" +
					"[TEXT]\n\n" +
					"Requirements:\n- Natural, fluent language\n" +
					"- Consistent terminology\n- Preserve tone: [FORMAL/INFORMAL/TECHNICAL]\n" +
					"- Adapt culturally where needed",
			},
			{
				Order:        3,
				Name:         "Review & QA",
				Description:  "Quality control and final fixes",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"proofreading", "qa", "editing"},
				Tips: []string{
					"A native speaker review is recommended",
					"Check terminology consistency",
					"Preserve formatting",
				},
			},
		},
	},

	// ============================================
	// DATA DASHBOARD
	// ============================================
	{
		ID:          "data-dashboard",
		Name:        "Data Dashboard Creation",
		NameEN:      "Data Dashboard Creation",
		Description: "From data to a visual dashboard",
		Triggers: []string{
			"dashboard", "veri analizi", "data visualization",
			"grafik", "rapor", "analytics", "bi",
		},
		Complexity:        "medium",
		EstimatedDuration: "2-5 hours",
		Tags:              []string{"data", "analytics", "visualization"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "Data Analysis & Insights",
				Description:  "Analyze the data and extract the highlights",
				Category:     models.CategoryData,
				InputType:    models.MediaData,
				OutputType:   models.MediaText,
				Capabilities: []string{"data analysis", "statistics", "insights"},
				PromptTemplate: "Analyze this dataset:\n\n[DATA or DESCRIPTION]\n\n" +
					"Output:\n1. Key metrics and statistics\n2. Significant trends\n" +
					"3. Anomalies or notable points\n" +
					"4. Visualization suggestions for a dashboard\n5. KPI definitions",
			},
			{
				Order:        2,
				Name:         "Visualization Design",
				Description:  "Chart and graph designs",
				Category:     models.CategoryData,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"charts", "graphs", "data viz"},
				Tips: []string{
					"Pick the right chart type (trend=line, comparison=bar)",
					"Keep color coding consistent",
					"Skip decoration, maximize data-ink ratio",
				},
			},
			{
				Order:        3,
				Name:         "Dashboard Layout",
				Description:  "Bring all the elements together",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaDocument,
				Capabilities: []string{"dashboard", "layout", "design"},
				PromptTemplate: "Dashboard layout design, [TOPIC] analytics, " +
					"clean modern style, dark theme, " +
					"KPI cards on top, main chart center, " +
					"supporting charts below, professional BI aesthetic --ar 16:9",
				Tips: []string{
					"Most important metrics on top",
					"Filters within easy reach",
					"Plan for responsive layout",
				},
			},
		},
	},

	// ============================================
	// MOBILE APP DESIGN
	// ============================================
	{
		ID:          "mobile-app-design",
		Name:        "Mobile App Design",
		NameEN:      "Mobile App Design",
		Description: "From UI/UX design to prototype",
		Triggers: []string{
			"mobil uygulama", "app design", "uygulama tasarla",
			"mobile app", "ios app", "android app", "ui design",
		},
		Complexity:        "complex",
		EstimatedDuration: "5-10 hours",
		Tags:              []string{"mobile", "ui", "ux", "design"},
		Steps: []models.WorkflowStepTemplate{
			{
				Order:        1,
				Name:         "UX Research & Wireframe",
				Description:  "User flows and skeleton layouts",
				Category:     models.CategoryText,
				InputType:    models.MediaText,
				OutputType:   models.MediaText,
				Capabilities: []string{"ux research", "wireframe", "user flow"},
				PromptTemplate: "UX document for [APP NAME]:\n\n" +
					"App purpose: [PURPOSE]\nTarget user: [PERSONA]\n" +
					"Core features: [FEATURES]\n\n" +
					"Output:\n1. User persona\n2. Main user flows\n" +
					"3. Screen list and hierarchy\n" +
					"4. Wireframe description per screen\n5. Navigation structure",
			},
			{
				Order:        2,
				Name:         "UI Design System",
				Description:  "Colors, typography, component library",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"design system", "ui components", "style guide"},
				PromptTemplate: "Mobile app design system for [APP], " +
					"[STYLE - minimal/bold/playful], " +
					"color palette, typography scale, " +
					"button styles, input fields, cards, " +
					"iOS/Android guidelines compliant --ar 3:4",
			},
			{
				Order:        3,
				Name:         "Screen Designs",
				Description:  "Final design for every screen",
				Category:     models.CategoryVisual,
				InputType:    models.MediaText,
				OutputType:   models.MediaImage,
				Capabilities: []string{"mobile ui", "screen design", "app screens"},
				PromptTemplate: "Mobile app screen design: [SCREEN NAME], " +
					"[APP] app, [FUNCTION], " +
					"modern UI, [COLOR SCHEME], " +
					"iOS style, clean, intuitive --ar 9:19",
				Tips: []string{
					"Touch targets at least 44px",
					"Respect safe areas",
					"Design gesture-friendly",
				},
			},
			{
				Order:        4,
				Name:         "Prototype & Handoff",
				Description:  "Clickable prototype and developer handoff",
				Category:     models.CategoryVisual,
				InputType:    models.MediaImage,
				OutputType:   models.MediaDocument,
				Capabilities: []string{"prototype", "handoff", "specs"},
				Tips: []string{
					"Use Figma or Adobe XD",
					"Show every state (hover, active, disabled)",
					"Include spacing and sizing specs",
				},
			},
		},
	},
}

// BuiltinTemplates returns the compiled-in workflow library.
func BuiltinTemplates() []models.WorkflowTemplate {
	return builtinTemplates
}

// TemplateByID looks up a builtin template, nil if absent.
func TemplateByID(id string) *models.WorkflowTemplate {
	for i := range builtinTemplates {
		if builtinTemplates[i].ID == id {
			return &builtinTemplates[i]
		}
	}
	return nil
}
