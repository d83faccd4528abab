// Package assets holds the lead-magnet catalog and the branded PDF
// generator. The catalog's outline content feeds both the landing-page
// templates and the generated PDFs, so the two never drift apart.
package assets

// Section is one titled block of checklist or guide content.
type Section struct {
	Title string
	Items []string
}

// LeadMagnet describes one downloadable resource gated behind an email form.
type LeadMagnet struct {
	Slug         string // route segment, e.g. "workflow-checklist"
	Title        string
	Filename     string // PDF filename under <static dir>/pdfs
	Teaser       string // one-line pitch shown on the landing page
	Intro        string
	Sections     []Section
	Checkboxes   bool // render section items as checklist boxes instead of bullets
	ClosingTitle string
	Closing      string
}

// Path returns the magnet's landing-page route.
func (m LeadMagnet) Path() string {
	return "/" + m.Slug
}

// DownloadPath returns the magnet's PDF download route.
func (m LeadMagnet) DownloadPath() string {
	return "/" + m.Slug + "/download"
}

// Tier is one service offering, advertised on the pricing page and on the
// closing page of every generated PDF.
type Tier struct {
	Name  string
	Price string
	Blurb string
}

// Tiers returns the service tiers in ascending price order.
func Tiers() []Tier {
	return []Tier{
		{"Free Workflow Triage Call", "Free", "Quick audit of your biggest time drains"},
		{"Workflow Opportunity Report", "$195", "Detailed analysis and recommendations"},
		{"Automation Build", "$495", "Custom automation implementation"},
		{"AI Automation Solution", "$995", "Intelligent AI-powered workflows"},
	}
}

// Catalog returns every lead magnet the site offers.
func Catalog() []LeadMagnet {
	return catalog
}

// BySlug returns the lead magnet with the given slug.
func BySlug(slug string) (LeadMagnet, bool) {
	for _, m := range catalog {
		if m.Slug == slug {
			return m, true
		}
	}
	return LeadMagnet{}, false
}

var catalog = []LeadMagnet{
	{
		Slug:     "workflow-checklist",
		Title:    "Workflow Audit Checklist",
		Filename: "workflow-audit-checklist.pdf",
		Teaser:   "Find the automation opportunities hiding in your week with 32 yes/no questions across 8 workflow areas.",
		Intro: "This checklist will help you identify automation opportunities in your daily workflows. " +
			"For each task you perform regularly, ask yourself these questions to determine if it's " +
			"a good candidate for automation.",
		Sections: []Section{
			{
				Title: "1. Task Frequency & Volume",
				Items: []string{
					"Do you perform this task daily or weekly?",
					"Does this task take more than 5 minutes each time?",
					"Do multiple team members perform this same task?",
					"Does the task involve repetitive steps?",
				},
			},
			{
				Title: "2. Data Movement & Integration",
				Items: []string{
					"Do you copy data between different apps or systems?",
					"Do you manually update spreadsheets or databases?",
					"Do you send the same information to multiple places?",
					"Do you wait for data from one system to update another?",
				},
			},
			{
				Title: "3. Communication & Notifications",
				Items: []string{
					"Do you send similar emails or messages repeatedly?",
					"Do you manually notify people when something happens?",
					"Do you check multiple places for updates or alerts?",
					"Do you forward or copy information between team members?",
				},
			},
			{
				Title: "4. File & Document Management",
				Items: []string{
					"Do you manually organize, rename, or move files?",
					"Do you create similar documents from templates?",
					"Do you convert files between different formats?",
					"Do you track versions or changes across multiple files?",
				},
			},
			{
				Title: "5. Reporting & Analytics",
				Items: []string{
					"Do you manually compile reports from different sources?",
					"Do you create the same charts or dashboards regularly?",
					"Do you export and format data for presentations?",
					"Do you track KPIs or metrics manually?",
				},
			},
			{
				Title: "6. Customer & Lead Management",
				Items: []string{
					"Do you manually enter customer information into your CRM?",
					"Do you qualify or route leads based on specific criteria?",
					"Do you send follow-up sequences manually?",
					"Do you track customer interactions across multiple tools?",
				},
			},
			{
				Title: "7. Approval & Review Processes",
				Items: []string{
					"Do you manually route items for approval or review?",
					"Do you check for missing information before processing?",
					"Do you follow up on pending approvals or deadlines?",
					"Do you notify people when approvals are complete?",
				},
			},
			{
				Title: "8. Scheduling & Calendar Management",
				Items: []string{
					"Do you manually schedule meetings or appointments?",
					"Do you send calendar invites or reminders?",
					"Do you coordinate availability across team members?",
					"Do you reschedule or update calendar events frequently?",
				},
			},
		},
		Checkboxes:   true,
		ClosingTitle: "Scoring Your Results",
		Closing: "Count the number of checkmarks for each task or workflow area. The more boxes " +
			"you checked, the better candidate it is for automation. 5-8 checkmarks: excellent " +
			"automation opportunity with high ROI potential. 3-4 checkmarks: good automation " +
			"candidate, worth exploring. 1-2 checkmarks: possible automation, may need further " +
			"evaluation. 0 checkmarks: keep it manual for now.",
	},
	{
		Slug:     "top-10-automations",
		Title:    "Top 10 Automations for Small Teams",
		Filename: "top-10-automations-small-teams.pdf",
		Teaser:   "The ten automations that deliver the highest ROI for teams of 2-20 people.",
		Intro: "Small teams often struggle with limited resources and too much manual work. " +
			"These 10 automations deliver the highest ROI for teams of 2-20 people, helping " +
			"you save time, reduce errors, and scale without adding headcount.",
		Sections: []Section{
			{
				Title: "1. Lead Capture & CRM Entry",
				Items: []string{
					"Automatically capture leads from forms, emails, or social media and add them to your CRM with proper categorization and tagging. No more manual data entry or lost leads.",
					"Time Saved: 5-10 hours/week",
					"Tools: Zapier, HubSpot, Airtable, Google Forms",
				},
			},
			{
				Title: "2. Email Follow-Up Sequences",
				Items: []string{
					"Set up automated email sequences that trigger based on customer actions or time delays. Perfect for onboarding, nurture campaigns, or re-engagement.",
					"Time Saved: 3-8 hours/week",
					"Tools: Mailchimp, ActiveCampaign, Gmail, Zapier",
				},
			},
			{
				Title: "3. Invoice & Payment Reminders",
				Items: []string{
					"Automatically send payment reminders before and after due dates, update accounting systems when payments are received, and flag overdue accounts.",
					"Time Saved: 2-5 hours/week",
					"Tools: QuickBooks, Stripe, PayPal, Xero",
				},
			},
			{
				Title: "4. Meeting Scheduling & Coordination",
				Items: []string{
					"Let clients and team members self-schedule meetings based on your availability. Automatically send reminders and sync across calendars.",
					"Time Saved: 4-6 hours/week",
					"Tools: Calendly, Acuity Scheduling, Google Calendar",
				},
			},
			{
				Title: "5. Social Media Posting",
				Items: []string{
					"Schedule and publish content across multiple social platforms from a single dashboard. Repurpose blog posts, auto-share new content, and maintain consistent presence.",
					"Time Saved: 3-7 hours/week",
					"Tools: Buffer, Hootsuite, Later, Zapier",
				},
			},
			{
				Title: "6. Customer Inquiry Routing",
				Items: []string{
					"Automatically route customer inquiries to the right team member based on keywords, urgency, or customer type. Ensure faster response times.",
					"Time Saved: 5-8 hours/week",
					"Tools: Help Scout, Zendesk, Gmail filters, Slack",
				},
			},
			{
				Title: "7. Weekly Reporting & Dashboards",
				Items: []string{
					"Auto-generate weekly reports pulling data from multiple sources. Track KPIs, sales metrics, project status, and team performance without manual compilation.",
					"Time Saved: 2-4 hours/week",
					"Tools: Google Data Studio, Tableau, Excel, Airtable",
				},
			},
			{
				Title: "8. File Organization & Backup",
				Items: []string{
					"Automatically organize, rename, and backup files based on rules. Move completed projects to archives, sync across cloud storage, and prevent data loss.",
					"Time Saved: 2-4 hours/week",
					"Tools: Dropbox, Google Drive, Backblaze, Hazel",
				},
			},
			{
				Title: "9. Task & Project Updates",
				Items: []string{
					"Sync tasks across project management tools, automatically update stakeholders on progress, and trigger next steps when tasks are completed.",
					"Time Saved: 3-6 hours/week",
					"Tools: Asana, Trello, Monday.com, Slack, Zapier",
				},
			},
			{
				Title: "10. Expense Tracking & Reporting",
				Items: []string{
					"Automatically capture receipts, categorize expenses, and generate expense reports. Sync with accounting software and flag policy violations.",
					"Time Saved: 2-5 hours/week",
					"Tools: Expensify, Receipt Bank, QuickBooks, Xero",
				},
			},
		},
		ClosingTitle: "Getting Started",
		Closing: "Don't try to automate everything at once. Start with 1-2 automations that will " +
			"have the biggest impact for your team. Focus on tasks that are highly repetitive " +
			"and time-consuming, prone to human error, currently blocking other work, and easy " +
			"to define with clear rules. PeakOps can help you identify the best starting point " +
			"and build custom automations tailored to your specific workflows. Book a free " +
			"triage call to get started.",
	},
	{
		Slug:     "automation-guide",
		Title:    "The Business Automation Guide",
		Filename: "business-automation-guide.pdf",
		Teaser:   "Plan, build, and roll out your first business automation in five practical steps.",
		Intro: "Most teams know they should automate more but never get past the first spreadsheet. " +
			"This guide walks you through a five-step process for picking the right workflow, " +
			"building the automation, and making sure it sticks.",
		Sections: []Section{
			{
				Title: "Step 1: Map Your Week",
				Items: []string{
					"List every recurring task you and your team touch in a normal week.",
					"Note how often each task runs and roughly how long it takes.",
					"Flag the tasks that exist only to move data from one tool to another.",
				},
			},
			{
				Title: "Step 2: Score Each Task",
				Items: []string{
					"Score frequency, duration, and error cost from 1 to 5 for every task.",
					"Multiply the three scores; anything above 27 is a strong candidate.",
					"Drop tasks that need human judgment at every step; automate around them instead.",
				},
			},
			{
				Title: "Step 3: Pick Your First Build",
				Items: []string{
					"Choose one high-scoring task with a clear trigger and a clear output.",
					"Write the workflow down as plain if-this-then-that sentences.",
					"Agree on what success looks like: hours saved, errors removed, or both.",
				},
			},
			{
				Title: "Step 4: Choose Your Tools",
				Items: []string{
					"Prefer the tools you already pay for; most have automation features you are not using.",
					"Use a connector platform like Zapier or Make when two tools will not talk directly.",
					"Reach for custom code only when off-the-shelf connectors cannot express the rules.",
				},
			},
			{
				Title: "Step 5: Ship, Measure, Iterate",
				Items: []string{
					"Run the automation alongside the manual process for two weeks before cutting over.",
					"Log every run so you can see failures before your customers do.",
					"Review the numbers monthly and retire automations that stop earning their keep.",
				},
			},
			{
				Title: "Common Pitfalls",
				Items: []string{
					"Automating a broken process instead of fixing the process first.",
					"Skipping the error path: decide what happens when a step fails on day one.",
					"Leaving no owner: every automation needs one person who gets the alert.",
				},
			},
		},
		ClosingTitle: "Next Steps",
		Closing: "Work through the five steps with your own task list, then pick a single workflow " +
			"and ship it. If you would rather have a productivity engineer do the heavy lifting, " +
			"book a free triage call and we'll find your highest-ROI automation together.",
	},
}
