package copywriter

import "strings"

// substitution point inside every template body
const placeholder = "{prompt}"

var bodies = map[Kind]string{
	KindProduct: `Transform your {prompt} with our innovative solution! Crafted with precision and care, this premium offering delivers exceptional value and performance. 

Key Features:
• Industry-leading quality and durability
• Sustainable and eco-friendly materials
• Backed by our satisfaction guarantee
• Ships fast with free returns

Don't miss out on this opportunity to elevate your experience. Order now and discover the difference quality makes. Join thousands of satisfied customers who have already made the switch!`,

	KindBlog: `{prompt}

In today's rapidly evolving digital landscape, staying ahead of the curve is more important than ever. This comprehensive guide explores the latest trends, strategies, and insights that will help you succeed.

Understanding the fundamentals is crucial. By implementing proven techniques and leveraging modern tools, you can achieve remarkable results. Our research shows that businesses who adapt quickly see up to 3x better performance.

The key takeaways:
1. Focus on quality over quantity
2. Embrace innovation and change
3. Build genuine connections
4. Measure and optimize continuously

Ready to take the next step? Start implementing these strategies today and watch your success grow!`,

	KindMarketing: `Attention-grabbing headline: {prompt}

Are you ready to transform your results? Our proven solution helps you achieve your goals faster than ever before.

✓ Instant results you can see
✓ Easy to implement and use
✓ Backed by real success stories
✓ Risk-free guarantee

Limited time offer: Get started today and unlock exclusive bonuses worth $500! Don't let this opportunity pass you by.

Click below to claim your spot now!`,

	KindSocial: `🚀 {prompt}

Did you know? Our community of over 100,000 users is changing the game! 

💡 Pro tip: Start small, think big, and never stop learning.

Tag someone who needs to see this! 👇

#Innovation #Success #GrowthMindset #AI`,

	KindEmail: `Subject: You Won't Believe What We Have for You!

Hi there,

{prompt}

We're excited to share something special with you today. Our latest offering is designed specifically with your needs in mind.

Here's what makes it different:
→ Lightning-fast results
→ Intuitive and user-friendly
→ Proven track record of success

Special offer for our valued subscribers: Use code WELCOME20 for 20% off your first order!

Ready to get started? Click the button below.

Best regards,
The JustCopy.ai Team

P.S. This offer expires in 48 hours – don't miss out!`,

	KindDefault: `Here's your AI-generated content based on: "{prompt}"

{prompt} represents an exciting opportunity in today's market. With the right approach and strategic implementation, you can achieve outstanding results.

Our advanced AI technology analyzes your requirements and delivers content that resonates with your target audience. Whether you're looking to inform, persuade, or engage, we've got you covered.

Key Benefits:
• Time-saving automation
• Consistent quality output
• Scalable content production
• SEO-optimized results

Take your content to the next level with JustCopy.ai. Start creating compelling copy that converts today!`,
}

// fills the template for kind with the prompt, verbatim.
// unknown kinds fall back to the default template.
func Render(kind Kind, prompt string) string {
	body, ok := bodies[kind]
	if !ok {
		body = bodies[KindDefault]
	}

	return strings.ReplaceAll(body, placeholder, prompt)
}

var catalog = []TemplateDescriptor{
	{ID: 1, Name: "Product Description", Description: "Create compelling product descriptions", Category: "E-commerce"},
	{ID: 2, Name: "Blog Post", Description: "Generate engaging blog content", Category: "Content"},
	{ID: 3, Name: "Social Media Post", Description: "Craft viral social media content", Category: "Social"},
	{ID: 4, Name: "Email Campaign", Description: "Write persuasive email copy", Category: "Marketing"},
	{ID: 5, Name: "Ad Copy", Description: "Create high-converting ad copy", Category: "Advertising"},
}

// returns a copy of the fixed template list
func Catalog() []TemplateDescriptor {
	out := make([]TemplateDescriptor, len(catalog))
	copy(out, catalog)
	return out
}
