package linkedin_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/mukulkathayat/linkedin-mcp/httpclient"
	"github.com/mukulkathayat/linkedin-mcp/linkedin"
	"github.com/mukulkathayat/linkedin-mcp/testutil"
	"github.com/mukulkathayat/linkedin-mcp/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testProfile = "https://www.linkedin.com/in/williamhgates/"
	testCompany = "https://www.linkedin.com/company/google/"
)

var testCredentials = httpclient.Credentials{
	APIKey:  "test-key",
	APIHost: "linkedin-data-scraper.p.rapidapi.com",
	APIUser: "test-user",
}

func newDispatcher(u *testutil.Upstream) *tool.Dispatcher {
	client := httpclient.New(u.URL(), httpclient.WithCredentials(testCredentials))

	return tool.NewDispatcher(linkedin.NewCatalog(), client)
}

type toolCase struct {
	name   string
	args   map[string]any
	method string
	uri    string
	body   string
}

func toolCases() []toolCase {
	links := map[string]any{"links": []any{testProfile}}
	link := map[string]any{"link": testProfile}

	return []toolCase{
		{name: "profiles", args: links, method: http.MethodPost, uri: "/profiles", body: `{"links":["` + testProfile + `"]}`},
		{name: "companies", args: links, method: http.MethodPost, uri: "/companies", body: `{"links":["` + testProfile + `"]}`},
		{
			name: "company_posts", args: links, method: http.MethodPost, uri: "/company_posts",
			body: `{"links":["` + testProfile + `"],"count":1}`,
		},
		{name: "person", args: link, method: http.MethodPost, uri: "/person", body: `{"link":"` + testProfile + `"}`},
		{name: "person_urn", args: link, method: http.MethodPost, uri: "/person_urn", body: `{"link":"` + testProfile + `"}`},
		{name: "person_skills", args: link, method: http.MethodPost, uri: "/person_skills", body: `{"link":"` + testProfile + `"}`},
		{
			name: "search_people_with_filters", args: map[string]any{"keyword": "engineer"},
			method: http.MethodPost, uri: "/search_people_with_filters", body: `{"keyword":"engineer","page":1}`,
		},
		{
			name: "company", args: map[string]any{"link": testCompany},
			method: http.MethodPost, uri: "/company", body: `{"link":"` + testCompany + `"}`,
		},
		{
			name: "company_jobs", args: map[string]any{"company_url": testCompany},
			method: http.MethodPost, uri: "/company_jobs",
			body: `{"company_url":"` + testCompany + `","starts_from":0,"count":10}`,
		},
		{
			name: "search_company_with_filters", args: map[string]any{"keyword": "ai"},
			method: http.MethodPost, uri: "/search_company_with_filters",
			body: `{"keyword":"ai","page":1,"hasJobs":false}`,
		},
		{name: "post", args: link, method: http.MethodPost, uri: "/post", body: `{"link":"` + testProfile + `"}`},
		{
			name: "search_posts", args: map[string]any{"query": "golang"},
			method: http.MethodPost, uri: "/search_posts", body: `{"query":"golang","page":1}`,
		},
		{
			name: "profile_updates", args: map[string]any{"profile_url": testProfile},
			method: http.MethodGet,
			uri:    "/profile_updates?profile_url=https%3A//www.linkedin.com/in/williamhgates/&page=1",
		},
		{
			name: "comments_from_recent_activity", args: map[string]any{"profile_url": testProfile},
			method: http.MethodGet,
			uri:    "/comments_from_recent_activity?profile_url=https%3A//www.linkedin.com/in/williamhgates/&page=1",
		},
		{
			name: "company_updates", args: map[string]any{"company_url": testCompany},
			method: http.MethodGet,
			uri:    "/company_updates?company_url=https%3A//www.linkedin.com/company/google/&page=1",
		},
		{
			name: "company_employee_count_per_skill", args: map[string]any{"keyword": "go", "company_url": testCompany},
			method: http.MethodPost, uri: "/company_employee_count_per_skill",
			body: `{"keyword":"go","companyUrl":"` + testCompany + `"}`,
		},
		{
			name:   "school_alumini_count_per_skill",
			args:   map[string]any{"keyword": "go", "schoolUrl": "https://www.linkedin.com/school/stanford-university/"},
			method: http.MethodPost, uri: "/school_alumini_count_per_skill",
			body: `{"keyword":"go","schoolUrl":"https://www.linkedin.com/school/stanford-university/"}`,
		},
		{
			name: "company_employee", args: map[string]any{"company_id": "1441"},
			method: http.MethodGet, uri: "/company_employee?companyId=1441&page=1",
		},
		{
			name: "post_reactions", args: map[string]any{"reactions_urn": "urn:li:activity:7219434359085252608/reactions"},
			method: http.MethodGet, uri: "/post_reactions?reactions_urn=urn%3Ali%3Aactivity%3A7219434359085252608/reactions",
		},
		{
			name: "post_comments", args: map[string]any{"comments_urn": "urn:li:activity:7219434359085252608/comments"},
			method: http.MethodGet, uri: "/post_comments?comments_urn=urn%3Ali%3Aactivity%3A7219434359085252608/comments",
		},
		{
			name: "post_reposts", args: map[string]any{"reposts_urn": "urn:li:activity:7219434359085252608/reposts"},
			method: http.MethodGet, uri: "/post_reposts?reposts_urn=urn%3Ali%3Aactivity%3A7219434359085252608/reposts",
		},
		{
			name: "search_posts_with_filters", args: map[string]any{},
			method: http.MethodGet, uri: "/search_posts_with_filters?page=1",
		},
		{
			name: "search_jobs", args: map[string]any{"query": "software engineer"},
			method: http.MethodGet, uri: "/search_jobs?query=software%20engineer&page=1",
		},
		{
			name: "job_details", args: map[string]any{"job_id": "3862806121"},
			method: http.MethodGet, uri: "/job_details?jobId=3862806121",
		},
		{
			name: "similar_profiles", args: map[string]any{"profileUrl": testProfile},
			method: http.MethodGet, uri: "/similar_profiles?profileUrl=https%3A//www.linkedin.com/in/williamhgates/",
		},
		{
			name: "suggestion_location", args: map[string]any{"query": "California"},
			method: http.MethodGet, uri: "/suggestion_location?query=California",
		},
		{
			name: "suggestion_company", args: map[string]any{"query": "Google"},
			method: http.MethodGet, uri: "/suggestion_company?query=Google",
		},
		{
			name: "suggestion_school", args: map[string]any{"query": "Stanford"},
			method: http.MethodGet, uri: "/suggestion_school?query=Stanford",
		},
		{
			name: "suggestion_industry", args: map[string]any{"query": "Technology"},
			method: http.MethodGet, uri: "/suggestion_industry?query=Technology",
		},
		{
			name: "suggestion_service_catagory", args: map[string]any{"query": "Consulting"},
			method: http.MethodGet, uri: "/suggestion_service_catagory?query=Consulting",
		},
		{
			name: "suggestion_person", args: map[string]any{"query": "Bill Gates"},
			method: http.MethodGet, uri: "/suggestion_person?query=Bill%20Gates",
		},
		{
			name: "search_geourns", args: map[string]any{"keyword": "California"},
			method: http.MethodGet, uri: "/search_geourns?keyword=California",
		},
		{name: "suggestion_function", args: map[string]any{}, method: http.MethodGet, uri: "/suggestion_function?"},
		{name: "suggestion_company_size", args: map[string]any{}, method: http.MethodGet, uri: "/suggestion_company_size"},
		{name: "suggestion_language", args: map[string]any{}, method: http.MethodGet, uri: "/suggestion_language"},
		{name: "profiles_david", args: links, method: http.MethodPost, uri: "/profiles_david", body: `{"links":["` + testProfile + `"]}`},
		{
			name: "private_chtiouisk", args: links, method: http.MethodPost, uri: "/private_chtiouisk",
			body: `{"links":["` + testProfile + `"],"count":5}`,
		},
		{
			name: "person_data_with_open_to_work_flag", args: link,
			method: http.MethodPost, uri: "/person_data_with_open_to_work_flag", body: `{"link":"` + testProfile + `"}`,
		},
		{
			name: "original_search_posts_with_filters", args: map[string]any{},
			method: http.MethodGet, uri: "/original_search_posts_with_filters",
		},
		{
			name: "private_company_insights_2", args: map[string]any{"link": testCompany},
			method: http.MethodGet, uri: "/private_company_insights_2?link=https%3A//www.linkedin.com/company/google/",
		},
		{
			name: "post_reposts_original", args: map[string]any{"repostsUrn": "urn:li:activity:1", "page": "1"},
			method: http.MethodGet, uri: "/post_reposts_original?repostsUrn=urn:li:activity:1&page=1",
		},
		{
			name: "profile_updates_original", args: map[string]any{"profile_url": testProfile, "page": "1"},
			method: http.MethodGet, uri: "/profile_updates_original?profile_url=" + testProfile + "&page=1",
		},
		{
			name: "company_updates_original", args: map[string]any{"company_url": testCompany, "page": float64(2)},
			method: http.MethodGet, uri: "/company_updates_original?company_url=" + testCompany + "&page=2",
		},
		{name: "profile_posts_all", args: link, method: http.MethodPost, uri: "/profile_posts_all", body: `{"link":"` + testProfile + `"}`},
		{
			name: "person_data_with_experiences", args: link,
			method: http.MethodPost, uri: "/person_data_with_experiences", body: `{"link":"` + testProfile + `"}`,
		},
		{
			name: "person_data_with_languages", args: link,
			method: http.MethodPost, uri: "/person_data_with_languages", body: `{"link":"` + testProfile + `"}`,
		},
		{
			name: "person_data_with_educations", args: link,
			method: http.MethodPost, uri: "/person_data_with_educations", body: `{"link":"` + testProfile + `"}`,
		},
	}
}

func TestNewCatalog_RegistersEveryTool(t *testing.T) {
	t.Parallel()

	catalog := linkedin.NewCatalog()
	cases := toolCases()

	require.Equal(t, 47, catalog.Len())
	require.Len(t, cases, catalog.Len())

	for i, name := range catalog.Names() {
		assert.Equal(t, cases[i].name, name)

		desc, ok := catalog.Lookup(name)
		require.True(t, ok)
		assert.NotEmpty(t, desc.Description, name)
	}
}

func TestTools_SendExpectedRequestWithRequiredArguments(t *testing.T) {
	t.Parallel()

	for _, tc := range toolCases() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			up := testutil.NewUpstream(t, http.StatusOK, `{"success":true}`)
			dispatcher := newDispatcher(up)

			result := dispatcher.Call(testutil.Context(t), tc.name, tc.args)

			require.True(t, result.OK(), string(result.JSON()))
			assert.JSONEq(t, `{"success":true}`, string(result.Value))

			got := up.Last(t)
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.uri, got.URI)
			assert.Equal(t, testCredentials.APIHost, got.Headers.Get("x-rapidapi-host"))
			assert.Equal(t, testCredentials.APIKey, got.Headers.Get("x-rapidapi-key"))
			assert.Equal(t, testCredentials.APIUser, got.Headers.Get("x-rapidapi-user"))
			assert.Equal(t, "application/json", got.Headers.Get("Content-Type"))

			if tc.body == "" {
				assert.Empty(t, got.Body)
			} else {
				assert.JSONEq(t, tc.body, got.Body)
			}
		})
	}
}

func TestTools_RejectCallsMissingRequiredArguments(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusOK, `{}`)
	dispatcher := newDispatcher(up)

	for _, desc := range linkedin.Tools() {
		hasRequired := false

		for _, param := range desc.Params {
			hasRequired = hasRequired || param.Required
		}

		if !hasRequired {
			continue
		}

		result := dispatcher.Call(testutil.Context(t), desc.Name, map[string]any{})
		require.False(t, result.OK(), desc.Name)
		assert.Equal(t, tool.ExceptionValidation, result.Failure.ExceptionType, desc.Name)
	}

	assert.Empty(t, up.Requests())
}

func TestCompanyUpdatesOriginal_RejectsPageOutsideInt64(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusOK, `{}`)

	result := newDispatcher(up).Call(testutil.Context(t), "company_updates_original", map[string]any{
		"company_url": "u",
		"page":        1e20,
	})

	require.False(t, result.OK())
	assert.Equal(t, tool.ExceptionValidation, result.Failure.ExceptionType)
	assert.Empty(t, up.Requests())
}

func TestSuggestionSchool_ReturnsUpstreamJSONVerbatim(t *testing.T) {
	t.Parallel()

	payload := `{"data":[{"id":"1792","name":"Stanford University"}],"success":true}`
	up := testutil.NewUpstream(t, http.StatusOK, payload)

	result := newDispatcher(up).Call(testutil.Context(t), "suggestion_school", map[string]any{"query": "Stanford"})

	require.True(t, result.OK())
	assert.Equal(t, payload, string(result.Value))
	assert.Equal(t, "query=Stanford", mustRawQuery(t, up.Last(t).URI))
}

func mustRawQuery(t *testing.T, uri string) string {
	t.Helper()

	parsed, err := url.ParseRequestURI(uri)
	require.NoError(t, err)

	return parsed.RawQuery
}

func TestSearchPeopleWithFilters_SendsOnlySuppliedOptionals(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusOK, `{}`)

	result := newDispatcher(up).Call(testutil.Context(t), "search_people_with_filters", map[string]any{
		"keyword":    "engineer",
		"page":       float64(3),
		"first_name": "Bill",
		"last_name":  "",
	})
	require.True(t, result.OK())

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(up.Last(t).Body), &body))

	assert.Equal(t, map[string]any{"keyword": "engineer", "page": float64(3), "first_name": "Bill"}, body)
	assert.NotContains(t, body, "title_free_text")
	assert.NotContains(t, body, "company_free_text")
	assert.NotContains(t, body, "last_name")
}

func TestSearchJobs_AppendsOptionalFiltersInOrder(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusOK, `{}`)

	result := newDispatcher(up).Call(testutil.Context(t), "search_jobs", map[string]any{
		"query":            "golang",
		"easyApply":        "true",
		"searchLocationId": "103644278",
		"page":             "2",
	})
	require.True(t, result.OK())

	assert.Equal(t, "/search_jobs?query=golang&page=2&searchLocationId=103644278&easyApply=true", up.Last(t).URI)
}

func TestSearchPosts_ForwardsFilters(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusOK, `{}`)

	result := newDispatcher(up).Call(testutil.Context(t), "search_posts", map[string]any{
		"query":   "golang",
		"filters": []any{map[string]any{"key": "datePosted", "values": "past-week"}},
	})
	require.True(t, result.OK())

	assert.JSONEq(t,
		`{"query":"golang","page":1,"filters":[{"key":"datePosted","values":"past-week"}]}`,
		up.Last(t).Body,
	)
}

func TestTools_SurfaceUpstreamFailures(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusBadRequest, `{"message":"Couldn't recognize the parameter keys provided"}`)

	result := newDispatcher(up).Call(testutil.Context(t), "company_employee", map[string]any{"company_id": "1441"})

	require.False(t, result.OK())
	assert.JSONEq(t, `{
		"error": "Couldn't recognize the parameter keys provided",
		"status": 400,
		"details": {"message": "Couldn't recognize the parameter keys provided"}
	}`, string(result.JSON()))
}

func TestTools_IdenticalCallsProduceIdenticalRequests(t *testing.T) {
	t.Parallel()

	up := testutil.NewUpstream(t, http.StatusOK, `{}`)
	dispatcher := newDispatcher(up)
	args := map[string]any{"profile_url": testProfile, "paginationToken": "abc"}

	dispatcher.Call(testutil.Context(t), "profile_updates", args)
	dispatcher.Call(testutil.Context(t), "profile_updates", args)

	requests := up.Requests()
	require.Len(t, requests, 2)

	first, second := requests[0], requests[1]
	assert.Equal(t, first.Method, second.Method)
	assert.Equal(t, first.URI, second.URI)

	for _, header := range []string{"x-rapidapi-host", "x-rapidapi-key", "x-rapidapi-user", "Content-Type"} {
		assert.Equal(t, first.Headers.Get(header), second.Headers.Get(header), header)
	}
}

func TestTools_RecordKnownUpstreamQuirks(t *testing.T) {
	t.Parallel()

	catalog := linkedin.NewCatalog()

	for _, name := range []string{
		"person_urn", "company_employee", "search_geourns",
		"company_employee_count_per_skill", "school_alumini_count_per_skill",
	} {
		desc, ok := catalog.Lookup(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, desc.Notes, name)
	}
}
