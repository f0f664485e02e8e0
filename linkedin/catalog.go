// Package linkedin declares every LinkedIn data endpoint exposed as a tool.
// Tool names, argument names and upstream field names are a compatibility
// contract; several endpoints are known to misbehave upstream and are sent
// exactly as documented anyway.
package linkedin

import (
	"github.com/mukulkathayat/linkedin-mcp/tool"
)

const (
	descLink       = "LinkedIn URL"
	descLinks      = "List of LinkedIn URLs"
	descProfileURL = "LinkedIn profile URL"
	descCompanyURL = "LinkedIn company URL"
	descQuery      = "Search query"
	descPage       = "Page number"
	descToken      = "For pagination"
)

const (
	NotePersonURN = "Fails upstream with 400 (Failed to scrape profile). " +
		"It is unclear whether the endpoint expects a URN string or a full profile link with URN."
	NoteCompanyEmployee = "Fails upstream with 400 (Couldn't recognize the parameter keys provided) " +
		"even when the documented companyId/page keys are sent."
	NoteSearchGeoURNs = "Fails upstream when the keyword contains spaces (e.g. \"New York\")."
	NoteCompanyURL    = "The upstream body field is camelCase companyUrl."
	NoteSchoolURL     = "The upstream body field is camelCase schoolUrl. Fails upstream with 400 Bad Request."
	NoteURNSource     = "Obtain the URN from the company_updates or profile_updates results."
	NotePremium       = "Marked as private/premium upstream."
	NoteUnencoded     = "Values are sent without percent-encoding."
)

func linkParam() tool.Param {
	return tool.Required("link", tool.String, descLink)
}

func linksParam() tool.Param {
	return tool.Required("links", tool.StringList, descLinks)
}

func queryParam(example string) tool.Param {
	return tool.Required("query", tool.String, descQuery+" (e.g. \""+example+"\")")
}

// Tools returns the descriptors in the order they are registered.
func Tools() []tool.Descriptor {
	return []tool.Descriptor{
		tool.Post("profiles", "/profiles",
			"Can scrape up to 100 profiles data in a go",
			linksParam(),
		),
		tool.Post("companies", "/companies",
			"Can scrape up to 100 companies data in a go",
			linksParam(),
		),
		tool.Post("company_posts", "/company_posts",
			"Can scrape 100 posts of 50 linkedin companies",
			linksParam(),
			tool.Defaulted("count", tool.Integer, 1, "Number of posts per company"),
		),
		tool.Post("person", "/person",
			"Scrapes all data of a person from linkedin",
			linkParam(),
		),
		tool.Post("person_urn", "/person_urn",
			"Scrapes all data from a person's page using his profile URN",
			tool.Required("link", tool.String, "Profile URN or profile link containing the URN"),
		).WithNotes(NotePersonURN),
		tool.Post("person_skills", "/person_skills",
			"Scrapes all skills of a linkedin user",
			linkParam(),
		),
		tool.Post("search_people_with_filters", "/search_people_with_filters",
			"Search for people from linkedin using all filters as per linkedin",
			tool.Required("keyword", tool.String, "Search keyword"),
			tool.Defaulted("page", tool.Integer, 1, descPage),
			tool.Optional("title_free_text", tool.String, "Job title filter"),
			tool.Optional("company_free_text", tool.String, "Company filter"),
			tool.Optional("first_name", tool.String, "First name filter"),
			tool.Optional("last_name", tool.String, "Last name filter"),
		),
		tool.Post("company", "/company",
			"Scrapes all data from a provided company url",
			linkParam(),
		),
		tool.Post("company_jobs", "/company_jobs",
			"Scrapes jobs of a specific linkedin company",
			tool.Required("company_url", tool.String, descCompanyURL),
			tool.Defaulted("starts_from", tool.Integer, 0, "Offset of the first job"),
			tool.Defaulted("count", tool.Integer, 10, "Number of jobs"),
		),
		tool.Post("search_company_with_filters", "/search_company_with_filters",
			"Search for companies as per linkedin search engine",
			tool.Required("keyword", tool.String, "Search keyword"),
			tool.Defaulted("page", tool.Integer, 1, descPage),
			tool.Optional("company_size_list", tool.String, "Comma separated company size codes (e.g. \"A,D\")"),
			tool.Defaulted("hasJobs", tool.Boolean, false, "Only companies with open jobs"),
			tool.Optional("location_list", tool.String, "Comma separated location ids"),
			tool.Optional("industry_list", tool.String, "Comma separated industry ids"),
		),
		tool.Post("post", "/post",
			"Scrapes post data by a person/company using its linkedin url",
			linkParam(),
		),
		tool.Post("search_posts", "/search_posts",
			"Search posts as per linkedin.com search engine (with filters)",
			tool.Required("query", tool.String, descQuery),
			tool.Defaulted("page", tool.Integer, 1, descPage),
			tool.Optional("filters", tool.ObjectList, "Filters such as {\"key\": \"datePosted\", \"values\": \"past-week\"}"),
		),
		tool.Get("profile_updates", "/profile_updates",
			"Scrapes updates posted by a linkedin user",
			tool.Required("profile_url", tool.String, descProfileURL),
			tool.Defaulted("page", tool.Integer, 1, descPage),
			tool.Optional("paginationToken", tool.String, descToken),
		),
		tool.Get("comments_from_recent_activity", "/comments_from_recent_activity",
			"Scrapes comments posted by a person as per his recent activity",
			tool.Required("profile_url", tool.String, descProfileURL),
			tool.Defaulted("page", tool.Integer, 1, descPage),
			tool.Optional("paginationToken", tool.String, descToken),
		),
		tool.Get("company_updates", "/company_updates",
			"Scrapes updates of a given company",
			tool.Required("company_url", tool.String, descCompanyURL),
			tool.Defaulted("page", tool.String, "1", descPage),
			tool.Optional("paginationToken", tool.String, descToken),
		),
		tool.Post("company_employee_count_per_skill", "/company_employee_count_per_skill",
			"Get employee count with specific skill at a company",
			tool.Required("keyword", tool.String, "Skill keyword"),
			tool.Required("company_url", tool.String, descCompanyURL).As("companyUrl"),
		).WithNotes(NoteCompanyURL),
		tool.Post("school_alumini_count_per_skill", "/school_alumini_count_per_skill",
			"Returns alumni count of a school/university",
			tool.Required("keyword", tool.String, "Skill keyword"),
			tool.Required("schoolUrl", tool.String, "LinkedIn school URL"),
			tool.Optional("skillExplicits", tool.String, "Skill id (e.g. \"260\")"),
		).WithNotes(NoteSchoolURL),
		tool.Get("company_employee", "/company_employee",
			"Scrapes 12 people from a company (People Tab)",
			tool.Required("company_id", tool.String, "LinkedIn company id (e.g. \"1441\" for Google)").As("companyId"),
			tool.Defaulted("page", tool.Integer, 1, descPage),
		).WithNotes(NoteCompanyEmployee),
		tool.Get("post_reactions", "/post_reactions",
			"Data of the people who reacted to a particular post",
			tool.Required("reactions_urn", tool.String, "Reactions URN (e.g. \"urn:li:activity:7219434359085252608/reactions\")"),
			tool.Optional("pagination_token", tool.String, descToken),
		).WithNotes(NoteURNSource),
		tool.Get("post_comments", "/post_comments",
			"Scrapes all commenters data who commented below a post",
			tool.Required("comments_urn", tool.String, "Comments URN (e.g. \"urn:li:activity:7219434359085252608/comments\")"),
			tool.Optional("pagination_token", tool.String, descToken),
		).WithNotes(NoteURNSource),
		tool.Get("post_reposts", "/post_reposts",
			"Scrapes all Reposters data who reposted a post",
			tool.Required("reposts_urn", tool.String, "Reposts URN (e.g. \"urn:li:activity:7219434359085252608/reposts\")"),
			tool.Optional("pagination_token", tool.String, descToken),
		).WithNotes(NoteURNSource),
		tool.Get("search_posts_with_filters", "/search_posts_with_filters",
			"Search for posts as per linkedin using all the available filters",
			tool.Optional("query", tool.String, descQuery+" (e.g. \"Top 10\")"),
			tool.Optional("sort_by", tool.String, "Sorting option"),
			tool.Optional("from_member", tool.String, "Filter by member"),
			tool.Optional("from_organization", tool.String, "Filter by organization"),
			tool.Optional("author_job_title", tool.String, "Filter by author's job title"),
			tool.Optional("author_company", tool.String, "Filter by author's company"),
			tool.Optional("content_type", tool.String, "Filter by content type"),
			tool.Optional("mentions_organization", tool.String, "Filter by mentioned organization"),
			tool.Optional("author_industry", tool.String, "Filter by author's industry"),
			tool.Optional("mentions_member", tool.String, "Filter by mentioned member"),
			tool.Defaulted("page", tool.String, "1", descPage).SkipEmpty(),
		),
		tool.Get("search_jobs", "/search_jobs",
			"Search for jobs with filters as per linkedin",
			tool.Required("query", tool.String, "Job search keywords (e.g. \"software engineer\")"),
			tool.Defaulted("page", tool.String, "1", descPage),
			tool.Optional("searchLocationId", tool.String, "Location id"),
			tool.Optional("experience", tool.String, "Experience level"),
			tool.Optional("postedAgo", tool.String, "Filter by post date"),
			tool.Optional("locationIdsList", tool.String, "List of location ids"),
			tool.Optional("sortBy", tool.String, "Sort results by"),
			tool.Optional("titleIdsList", tool.String, "List of job title ids"),
			tool.Optional("workplaceType", tool.String, "Type of workplace"),
			tool.Optional("functionIdsList", tool.String, "List of function ids"),
			tool.Optional("industryIdsList", tool.String, "List of industry ids"),
			tool.Optional("jobType", tool.String, "Type of job"),
			tool.Optional("companyIdsList", tool.String, "List of company ids"),
			tool.Optional("easyApply", tool.String, "Filter for easy apply jobs"),
		),
		tool.Get("job_details", "/job_details",
			"Get detailed information about a specific job",
			tool.Required("job_id", tool.String, "LinkedIn job id (e.g. \"3862806121\")").As("jobId"),
		),
		tool.Get("similar_profiles", "/similar_profiles",
			"Returns similar profiles to a given linkedin profile url",
			tool.Required("profileUrl", tool.String, descProfileURL),
		),
		tool.Get("suggestion_location", "/suggestion_location",
			"Suggestions per query",
			queryParam("California"),
		),
		tool.Get("suggestion_company", "/suggestion_company",
			"Suggestions per query",
			queryParam("Google"),
		),
		tool.Get("suggestion_school", "/suggestion_school",
			"Suggestions per query",
			queryParam("Stanford"),
		),
		tool.Get("suggestion_industry", "/suggestion_industry",
			"Suggestions per query",
			queryParam("Technology"),
		),
		tool.Get("suggestion_service_catagory", "/suggestion_service_catagory",
			"Suggestions as per query",
			queryParam("Consulting"),
		),
		tool.Get("suggestion_person", "/suggestion_person",
			"Returns a list of people suggestion from linkedin.",
			queryParam("Bill Gates"),
		),
		tool.Get("search_geourns", "/search_geourns",
			"Suggestions per query",
			tool.Required("keyword", tool.String, "Search keyword (e.g. \"California\", avoid spaces)"),
		).WithNotes(NoteSearchGeoURNs),
		tool.Get("suggestion_function", "/suggestion_function",
			"Gets suggestions for Job Function",
			tool.Optional("query", tool.String, descQuery+" (e.g. \"Engineering\")"),
		),
		tool.Get("suggestion_company_size", "/suggestion_company_size",
			"Suggestions for company size filter",
		),
		tool.Get("suggestion_language", "/suggestion_language",
			"Suggestions for language filter",
		),
		tool.Post("profiles_david", "/profiles_david",
			"Scrape 100 profiles in a single API call",
			linksParam(),
		).WithNotes(NotePremium),
		tool.Post("private_chtiouisk", "/private_chtiouisk",
			"This is a private endpoint for our premium user",
			linksParam(),
			tool.Defaulted("count", tool.Integer, 5, "Number of items per link"),
		).WithNotes(NotePremium),
		tool.Post("person_data_with_open_to_work_flag", "/person_data_with_open_to_work_flag",
			"Scrapes person data with open to work flag",
			linkParam(),
		),
		tool.Get("original_search_posts_with_filters", "/original_search_posts_with_filters",
			"Search for posts as per linkedin using all the available filters",
			tool.Optional("query", tool.String, descQuery),
			tool.Optional("author_company", tool.String, "Filter by author's company"),
			tool.Optional("author_job_title", tool.String, "Filter by author's job title"),
			tool.Optional("author_industry", tool.String, "Filter by author's industry"),
			tool.Optional("from_member", tool.String, "Filter by member"),
			tool.Optional("from_organization", tool.String, "Filter by organization"),
			tool.Optional("mentions_member", tool.String, "Filter by mentioned member"),
			tool.Optional("mentions_organization", tool.String, "Filter by mentioned organization"),
			tool.Optional("content_type", tool.String, "Filter by content type"),
			tool.Optional("sort_by", tool.String, "Sort results by"),
			tool.Optional("page", tool.String, descPage),
		).WithPlacement(tool.QueryIfAny).WithNotes(NotePremium),
		tool.Get("private_company_insights_2", "/private_company_insights_2",
			"Private endpoint to scrapes company insights",
			tool.Required("link", tool.String, descCompanyURL),
		).WithNotes(NotePremium),
		tool.Get("post_reposts_original", "/post_reposts_original",
			"Private",
			tool.Required("repostsUrn", tool.String, "URN for the post reposts"),
			tool.Required("page", tool.String, descPage),
		).WithEncoding(tool.Raw).WithNotes(NotePremium, NoteUnencoded),
		tool.Get("profile_updates_original", "/profile_updates_original",
			"Private",
			tool.Required("profile_url", tool.String, descProfileURL),
			tool.Required("page", tool.String, descPage),
		).WithEncoding(tool.Raw).WithNotes(NotePremium, NoteUnencoded),
		tool.Get("company_updates_original", "/company_updates_original",
			"Original data",
			tool.Required("company_url", tool.String, descCompanyURL),
			tool.Required("page", tool.Integer, descPage),
		).WithEncoding(tool.Raw).WithNotes(NotePremium, NoteUnencoded),
		tool.Post("profile_posts_all", "/profile_posts_all",
			"This endpoint scrapes all posts posted by a user at linkedin.com since joined.",
			linkParam(),
		).WithNotes(NotePremium),
		tool.Post("person_data_with_experiences", "/person_data_with_experiences",
			"Scrapes all linkedin profile data alongwith all the experiences.",
			linkParam(),
		),
		tool.Post("person_data_with_languages", "/person_data_with_languages",
			"Scrapers person data with all languages data",
			linkParam(),
		),
		tool.Post("person_data_with_educations", "/person_data_with_educations",
			"Scrapers person data along with all the educations data.",
			linkParam(),
		),
	}
}

// NewCatalog returns the full LinkedIn tool catalog.
func NewCatalog() *tool.Catalog {
	return tool.MustCatalog(Tools()...)
}
