package copypasta

import "strings"

// DefaultPrefix is the prompt prefix offered for summarizing extracted text.
const DefaultPrefix = "Extract the key insights and takeaways. Write in point form and organize section in headers. " +
	"Make sure it is comprehensive and complete and you don’t lose out important information. " +
	"At the end, have a call to action on the next steps based on what the write up suggests."

// DefaultTemplate is the template used when none is selected.
const DefaultTemplate = "Summarize"

// Template is a named instruction appended to text before it is sent to a model.
type Template struct {
	Name        string
	Instruction string
}

// templates holds the built-in templates in presentation order.
var templates = []Template{
	{
		Name:        "Edit for easier reading",
		Instruction: "Edit formatting, grammar and punctuation, do not edit/change style, tone, and content. Paragraph accordingly if needed. Retain expletives and vulgarity. This is a scraped page so some words may be transcribed wrongly. Write it neatly in paragraphs so that it is easier to read. Extract the key informative insights. Let each paragraphs be in proper sentences so that it reads off more smoothly. The start of the sentence acts as a takeaway and it should be bolded for easier reading and skimming. Make sure it is informative.   The format and template output should look like this:   **One liner lead sentence that acts like a main takeaway of a point:** Details from the content. Be as complete and comprehensive as possible. Do not lose information.  **Another One liner lead sentence that acts like a main takeaway of a point:** Details from the content. Be as complete and comprehensive as possible. Do not lose information.  So on until ALL informative insights are rewritten and extracted  Avoid adding your own analysis.",
	},
	{
		Name:        "Summarize",
		Instruction: "Extract the key insights and takeaways. Write in point form and organize section in headers. make sure it is comprehensive and complete and you don’t lose out important information. At the end, have a call to action on the next steps based on what the write up suggest",
	},
	{
		Name:        "Write Value Proposition Statements",
		Instruction: "Looking at the information above. Fill in the details from the text above with each section with what the user is trying to do. Identify multiple users and multiple use case by user:  1. A user  2. What are they trying to do (first identify the user; start with the phrase “they are trying to [their end goal or jobs to be done]) 3. How they are doing it (current flawed or less superior older way; start with the word “by”) 4. Problem (blocker of progress; to be addressed by benefit later; start with “which leads to...” Usually deterioration on something described with a adverb or adjective) 5. Limitation of current way (addressed by product capability; start with the word “because…” the reason and root cause of the problem caused by a specific step in the current way. Be specific and descriptive here! ) 6. Product capability (addresses limitation of current way; start with the phrase “now you can…” a descriptive activity that the solutions enable to address points in limitation of current way) 7. Product feature (few words on what the capability is called. Start with the word “using”. Also explain how it works and steps it performs to achieve the capability. Be very detailed step by step) 8. Benefit (addresses problem; usually an improvement on something described with an adverb or adjective; starts with the phrase so that [the user]…) 9. Add a section: Why do this (this is how it contributes to their use case; start with the phrase “in order to”)  ",
	},
	{
		Name:        "Creating or Caputuring Demand Statements",
		Instruction: "Pretend you are an experienced product marketer good at copy writing. Look at the above text. Glossary of terms: Who are the users or persona? What is the current way of doing things? (Addressed by product capability) What is the limitation of the current way (the actual manifestation of the limitation of the current way. Addressed by product feature). What is the core problem? (Implications from limitations of the current way. Has an adjective to describe the pain point: slower xyz, more expensive xyz. Addressed by Benefits later). What is the proposed solution.  What are the features? (What powers this new way.) What are the capabilities of this feature (how they would use the product.) What are the benefits of this feature (the change in state that comes from the solution. Usually an adjective like faster/improved xyz. The result of doing it your way) What is the use case.  A use case is defined as something that addresses all and each of the above listed user+problem with a feature+capability+benefit that you mentioned.  Create 3 messages each under two categories: Demand creation and demand capture messages. The components of a demand creation message are as followed: it contains a use case, current way, limitation of current way and problem. So main hook: Scheduling your meetings by (use case) coordinating over email? (current way) Subhook: Here is how much time you’re wasting every week (problem) sending your availability back and forth (limitation of current way). As for demand capture message it contains another 4 parts: The product capability, feature, benefit, product capability. So main hook: Schedule your meetings (product capability) with a single message (benefit) Sub hook: Calendly is a scheduling tool (product capability) that embeds your availability into a shareable webpage. Note: add the category tag inside the 3 hooks so that I can understand how you are breaking it down. Hooks must be targeted for a different MECE users/persona ",
	},
	{
		Name:        "Messaging Based On Problem/Solution Awareness (and how to gain trust)",
		Instruction: "I want to write some messaging for the above feature or task that I want you to think off to help me get started on my endeavours.  ``` There are two major categories: Creating demand and capturing Demand  For creating demand there are another 2 stages of awareness: For Problem unaware, lead with an alternative to the current way of doing things. Then Earn trust by showing that we understand their problems and pain point to convince them that they have a problem  For problem aware, lead with the problem statement. Earn trust by showing that we understand the problem and to convince them that they are missing a key capability  As for capturing demand, there is another 2 stages of awareness: For solution aware, lead of capability which is the product’s ability to solve their pain point and problem. We earn their trust that we know and understand what is the excepted capability that comes from our product. And it is convince them that our feature unlocks the capability  As for product aware, we lead with the feature. We earn their trust by connecting their desired features to an outcome. This is to convince them that our solution delivers on its benefit ```   For each type of awareness, show an example ",
	},
	{
		Name:        "Things to do based on Customer Maturity",
		Instruction: "This is to help me understand the different perspective on where the customer is at by simulating who and what are the customer is thinking based on the phases below. Give some suggests on the content needed to be produced to approach them Market Push Unaware Problem unaware (can you convince them they have a problem) Unaware The aren’t aware of their desire or their need to solve the problem, or they just won’t admit it Content: Educate on trends and the problem such as using white papers, industry reports, trend analysis Problem aware (Can you convince them a solution exists) They know they haven a problem to solve, but aren’t aware of the specific solutions. Content: educate on how to approach the problem. Use frameworks, guides, breakdowns Solution aware (can you convince them your solution is believable) They know their’s is a solution to their problem but they don’t know any specific products to solve it. Content: Show success stories that highlight main capabilities. Use case studies, gain calculations, buying guides Market Pull [Can also be applied to solution aware] Product aware (can you convince them your solution is better than the alternatives) They know your product exists but aren’t completely aware of what it does - or aren’t convinced of how well it does it Content; Pull them in to value creating steps using free trials, consults, value adds Most aware (Can you convince them to buy your solution) They know your product and what it does but haven’t gotten around to purchasing yet",
	},
	{
		Name:        "Jobs To Be Done",
		Instruction: "What are the jobs to be done of entity, person, or persona above? Write in the context of the universal job map (Define, Locate, Prepare, Confirm, Execute, Monitor, Modify, Conclude) outlined by Anthony Ulwick from his Outcome driven innovation framework). Title each job stage on the map with a broader jobs to be done statement. Identify 5 tasks under each job stage. Write the desired outcome statement as well for every task. The jobs to be done statement that follows the format of the verb+object+context clarifier. Note that the jobs to be done should be solution free or doesn’t assume a solution but an actual task the job performer wants solved, timeless, no requirements or specifications. Remember: we are not stating what they are doing, we are saying what they are trying to accomplish. Think checkpoints along the way in getting the job done. Then, write the desired outcome statement with the format of (minimize or maximize + measurable metric that the job performer gauges performance of the quality of job getting done + the object that the job performer can influence + the context clarifier). It should be one full sentence.   ",
	},
	{
		Name:        "What Changes Customer Habits?",
		Instruction: "Fill in the content from above into the template below: 1. Push & Pull: Push: What external (e.g., societal shifts, new responsibilities) and internal (e.g., frustrations, aspirations) factors are driving users to seek change? Example: Having a second child makes grocery shopping difficult, pushing parents towards easier solutions. An entrepreneur feeling stuck seeks solutions to improve their business. Pull: What positive outcomes do users envision with a solution, and what features attract them? Example: Parents desire smoother grocery shopping to spend more time with their children. Flexible delivery options attract users to grocery delivery services. 2. Anxiety & Habit: Anxiety: What uncertainties (anxiety-in-choice) and concerns (anxiety-in-use) do users have about the product? Example: Users worry if a business coaching service makes them appear inexperienced. Users feel anxious about inconsistent bus arrival times. Habit: What routines (habit-in-choice) and ingrained practices (habit-in-use) prevent users from switching? Example: Users accustomed to specific spreadsheet software hesitate to switch. Shopping for groceries on a whim hinders adapting to meal planning for delivery services.",
	},
	{
		Name:        "Blue Ocean Non-Customers",
		Instruction: "Explore the business using the Blue Ocean Strategy’s 3 tiers of noncustomers consist of: First-Tier Non-Customers: These are the closest to your market. They minimally purchase your industry’s offerings out of necessity but are ready to switch as soon as they find a superior alternative. To attract these non-customers, you need to understand their needs and pain points and offer a better solution. Second-Tier Non-Customers: These are people who consciously refuse your market’s offerings. They have recognized your industry but have chosen not to participate. To attract these non-customers, you need to understand their reasons for refusal and address these issues in your offerings. Third-Tier Non-Customers: These are the furthest from your market. They have never considered your industry’s offerings as an option. These non-customers represent a significant opportunity as they have often been overlooked by your industry. To attract these non-customers, you need to understand their needs and how your offerings could potentially meet those needs.  Be comprehensive, creative, and think critically on the various wide range of type of user. This exercise is to expand to new customers. Identify more than 10 user type or persona per tier. Propose what painpoints, needs , and customer’s jobs to be done that they need to do per user type   ",
	},
	{
		Name:        "Product Requirement Doc",
		Instruction: "Write a product requirement documentation. Add on milestones, roadmap and prioritize starting from items that are foundational to do other bigger things or because they are low hanging fruits that we can achieve to get something out. Justify your suggested roadmap and milestone ",
	},
}

// Templates returns the built-in templates in presentation order.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// LookupTemplate returns the template with the given name, ignoring case.
// Returns ENOTFOUND if no template matches.
func LookupTemplate(name string) (Template, error) {
	for _, t := range templates {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return Template{}, Errorf(ENOTFOUND, "template %q not found", name)
}
