package aggregate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/darkkaiser/youth-gateway/internal/openapi/center"
	"github.com/darkkaiser/youth-gateway/internal/openapi/fetcher"
	"github.com/darkkaiser/youth-gateway/internal/openapi/policy"
	"github.com/darkkaiser/youth-gateway/internal/openapi/work24"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// upstreams 집계 테스트에서 각 업스트림 API를 대체하는 핸들러 모음입니다.
// 지정하지 않은 업스트림은 빈 성공 응답을 반환합니다.
type upstreams struct {
	policy http.HandlerFunc
	center http.HandlerFunc
	work24 map[string]http.HandlerFunc // 엔드포인트명 → 핸들러
}

func dateAfter(days int) string {
	return time.Now().AddDate(0, 0, days).Format("20060102")
}

func emptyJSONHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"resultCode": 200, "resultMessage": "OK", "result": {"pagging": {"totCount": 0}, "list": []}}`))
}

func emptyXMLHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`<root><total>0</total></root>`))
}

func newTestService(t *testing.T, stubs upstreams) *Service {
	t.Helper()

	newServer := func(handler http.HandlerFunc, fallback http.HandlerFunc) *httptest.Server {
		if handler == nil {
			handler = fallback
		}
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		return server
	}

	f := fetcher.NewHTTPFetcher()

	policyServer := newServer(stubs.policy, emptyJSONHandler)
	centerServer := newServer(stubs.center, emptyJSONHandler)

	apiKeys := make(map[string]string, len(work24.Endpoints))
	work24Opts := make([]work24.Option, 0, len(work24.Endpoints))
	for _, ep := range work24.Endpoints {
		apiKeys[ep.Name] = "test-key"
		server := newServer(stubs.work24[ep.Name], emptyXMLHandler)
		work24Opts = append(work24Opts, work24.WithBaseURL(ep.Name, server.URL))
	}

	return NewService(
		policy.NewClient("test-key", f, policy.WithBaseURL(policyServer.URL)),
		center.NewClient("test-key", f, center.WithBaseURL(centerServer.URL)),
		work24.NewClient(apiKeys, f, work24Opts...),
	)
}

func TestRegion(t *testing.T) {
	t.Run("지역의 모든 섹션이 병렬로 채워진다", func(t *testing.T) {
		service := newTestService(t, upstreams{
			policy: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "26000", r.URL.Query().Get("zipCd"))
				w.Write([]byte(`{"resultCode": 200, "result": {"pagging": {"totCount": 1}, "list": [{"plcyNo": "P1", "plcyNm": "부산 청년 정책"}]}}`))
			},
			center: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "26", r.URL.Query().Get("ctpvCd"))
				w.Write([]byte(`{"resultCode": 200, "result": {"list": [{"cntrNm": "부산청년센터"}]}}`))
			},
			work24: map[string]http.HandlerFunc{
				"wanted": func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`<r><wanted><wantedAuthNo>K1</wantedAuthNo><company>부산테크</company></wanted></r>`))
				},
				"smallGiant": func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "26", r.URL.Query().Get("region"))
					w.Write([]byte(`<r><smallGiant><company>부산강소</company></smallGiant></r>`))
				},
				"training": func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "26", r.URL.Query().Get("srchTraArea1"))
					w.Write([]byte(`<r><scn_list><trprId>T1</trprId><title>훈련과정</title></scn_list></r>`))
				},
			},
		})

		pkg, err := service.Region(context.Background(), "부산")
		require.NoError(t, err)
		assert.Equal(t, "부산", pkg.RegionName)
		require.Len(t, pkg.Policies, 1)
		require.Len(t, pkg.Centers, 1)
		require.Len(t, pkg.Jobs, 1)
		require.Len(t, pkg.Companies, 1)
		require.Len(t, pkg.Courses, 1)
	})

	t.Run("부가 조회 실패 시 해당 섹션만 빈 목록", func(t *testing.T) {
		service := newTestService(t, upstreams{
			policy: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"resultCode": 200, "result": {"list": [{"plcyNo": "P1"}]}}`))
			},
			work24: map[string]http.HandlerFunc{
				"wanted": func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
			},
		})

		pkg, err := service.Region(context.Background(), "서울")
		require.NoError(t, err)
		require.Len(t, pkg.Policies, 1)
		assert.NotNil(t, pkg.Jobs)
		assert.Empty(t, pkg.Jobs)
	})

	t.Run("주 조회 실패 시 전체 집계가 실패", func(t *testing.T) {
		service := newTestService(t, upstreams{
			policy: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		})

		_, err := service.Region(context.Background(), "서울")
		require.Error(t, err)
	})
}

func TestMegaSearch(t *testing.T) {
	service := newTestService(t, upstreams{
		policy: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "개발", r.URL.Query().Get("plcyNm"))
			w.Write([]byte(`{"resultCode": 200, "result": {"list": [{"plcyNo": "P1"}]}}`))
		},
		work24: map[string]http.HandlerFunc{
			"wanted": func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "개발", r.URL.Query().Get("keyword"))
				w.Write([]byte(`<r><wanted><wantedAuthNo>K1</wantedAuthNo></wanted></r>`))
			},
			"jobInfo": func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<r><jobInfo><jobCd>020101</jobCd></jobInfo></r>`))
			},
		},
	})

	result, err := service.MegaSearch(context.Background(), MegaSearchParams{Keyword: "개발"})
	require.NoError(t, err)
	assert.Equal(t, "개발", result.Keyword)
	assert.Len(t, result.Policies, 1)
	assert.Len(t, result.Jobs, 1)
	assert.Len(t, result.JobInfos, 1)
	assert.Empty(t, result.Courses)
	assert.Empty(t, result.Programs)
}

func TestMegaSearchWithAgeAndRegion(t *testing.T) {
	service := newTestService(t, upstreams{
		policy: func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "창업", q.Get("plcyNm"))
			assert.Equal(t, "11000", q.Get("zipCd"))
			w.Write([]byte(`{"resultCode": 200, "result": {"list": [
				{"plcyNo": "P1", "sprtTrgtMinAge": "19", "sprtTrgtMaxAge": "34"},
				{"plcyNo": "P2", "sprtTrgtMinAge": "40", "sprtTrgtMaxAge": "49"}
			]}}`))
		},
	})

	result, err := service.MegaSearch(context.Background(), MegaSearchParams{Keyword: "창업", Age: 25, Region: "서울"})
	require.NoError(t, err)
	require.Len(t, result.Policies, 1, "연령 조건은 정책 섹션에 적용되어야 합니다")
	assert.Equal(t, "P1", result.Policies[0].PolicyNo)
}

func TestTrainingJobBridge(t *testing.T) {
	service := newTestService(t, upstreams{
		work24: map[string]http.HandlerFunc{
			"training": func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<r>
					<scn_list><trprId>T1</trprId><title>정보보안 과정</title><ncsYn>Y</ncsYn><ncsCd>20010102</ncsCd></scn_list>
					<scn_list><trprId>T2</trprId><title>일반 과정</title><ncsYn>N</ncsYn></scn_list>
				</r>`))
			},
			"wanted": func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "정보통신", r.URL.Query().Get("keyword"), "NCS 대분류명이 채용 검색 키워드가 되어야 합니다")
				w.Write([]byte(`<r><wanted><wantedAuthNo>K1</wantedAuthNo></wanted></r>`))
			},
		},
	})

	entries, err := service.TrainingJobBridge(context.Background(), "보안")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "T1", entries[0].Course.ID)
	assert.Equal(t, "정보통신", entries[0].NCSName)
	assert.Len(t, entries[0].Jobs, 1)

	assert.Equal(t, "T2", entries[1].Course.ID)
	assert.Empty(t, entries[1].NCSName)
	assert.Empty(t, entries[1].Jobs, "NCS 미적용 과정은 채용정보를 연계하지 않습니다")
}

func TestPolicyStats(t *testing.T) {
	countByCategory := map[string]int{
		"일자리": 120, "주거": 45, "교육": 80, "복지문화": 30, "참여권리": 10,
	}

	t.Run("분야별 정책 수가 많은 순으로 집계된다", func(t *testing.T) {
		service := newTestService(t, upstreams{
			policy: func(w http.ResponseWriter, r *http.Request) {
				category := r.URL.Query().Get("lclsfNm")
				fmt.Fprintf(w, `{"resultCode": 200, "result": {"pagging": {"totCount": %d}, "list": []}}`, countByCategory[category])
			},
		})

		counts, err := service.PolicyStats(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, counts, 5)

		assert.Equal(t, CategoryCount{Category: "일자리", Count: 120}, counts[0])
		assert.Equal(t, CategoryCount{Category: "교육", Count: 80}, counts[1])
		assert.Equal(t, CategoryCount{Category: "참여권리", Count: 10}, counts[4])
	})

	t.Run("일부 분야 조회 실패는 0건으로 집계된다", func(t *testing.T) {
		service := newTestService(t, upstreams{
			policy: func(w http.ResponseWriter, r *http.Request) {
				category := r.URL.Query().Get("lclsfNm")
				if category == "주거" {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				fmt.Fprintf(w, `{"resultCode": 200, "result": {"pagging": {"totCount": %d}, "list": []}}`, countByCategory[category])
			},
		})

		counts, err := service.PolicyStats(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, counts, 5)
		assert.Equal(t, CategoryCount{Category: "주거", Count: 0}, counts[4])
	})

	t.Run("모든 분야 조회 실패 시 전체 집계가 실패", func(t *testing.T) {
		service := newTestService(t, upstreams{
			policy: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		})

		_, err := service.PolicyStats(context.Background(), "")
		require.Error(t, err, "전체 실패가 0건 통계로 위장되어서는 안 됩니다")
	})
}

func TestRecommendPolicies(t *testing.T) {
	service := newTestService(t, upstreams{
		policy: func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "일자리", q.Get("lclsfNm"))
			assert.Equal(t, "11000", q.Get("zipCd"))
			w.Write([]byte(`{"resultCode": 200, "result": {"list": [
				{"plcyNo": "P1", "sprtTrgtMinAge": "18", "sprtTrgtMaxAge": "34"},
				{"plcyNo": "P2", "sprtTrgtMinAge": "40", "sprtTrgtMaxAge": "49"}
			]}}`))
		},
	})

	policies, err := service.RecommendPolicies(context.Background(), 25, "서울", "일자리")
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, "P1", policies[0].PolicyNo)
}

func TestUrgentJobsAggregate(t *testing.T) {
	service := newTestService(t, upstreams{
		work24: map[string]http.HandlerFunc{
			"wanted": func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `<r>
					<wanted><wantedAuthNo>KFAR</wantedAuthNo><closeDt>%s</closeDt></wanted>
					<wanted><wantedAuthNo>KSOON</wantedAuthNo><closeDt>%s</closeDt></wanted>
				</r>`, dateAfter(60), dateAfter(2))
			},
		},
	})

	urgent, err := service.UrgentJobs(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, urgent, 1, "기본 검색 기간(7일)을 벗어난 채용정보는 제외되어야 합니다")
	assert.Equal(t, "KSOON", urgent[0].Posting.AuthNo)
	assert.Equal(t, 2, urgent[0].DaysLeft)
}

func TestBuildSurvivalKit(t *testing.T) {
	service := newTestService(t, upstreams{
		policy: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resultCode": 200, "result": {"list": [
				{"plcyNo": "P1", "sprtTrgtMinAge": "19", "sprtTrgtMaxAge": "34"},
				{"plcyNo": "P2", "sprtTrgtMinAge": "60", "sprtTrgtMaxAge": "99"}
			]}}`))
		},
		work24: map[string]http.HandlerFunc{
			"wanted": func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `<r><wanted><wantedAuthNo>K1</wantedAuthNo><closeDt>%s</closeDt></wanted></r>`, dateAfter(3))
			},
		},
	})

	kit, err := service.BuildSurvivalKit(context.Background(), 25, "대전")
	require.NoError(t, err)
	assert.Equal(t, "대전", kit.RegionName)
	require.Len(t, kit.Policies, 1, "연령 필터를 통과한 정책만 포함되어야 합니다")
	assert.Equal(t, "P1", kit.Policies[0].PolicyNo)
	require.Len(t, kit.UrgentJobs, 1)
}

func TestBuildZeroCostPlan(t *testing.T) {
	service := newTestService(t, upstreams{
		policy: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resultCode": 200, "result": {"list": [
				{"plcyNo": "P1", "plcySprtCn": "전 과정 무료 제공"},
				{"plcyNo": "P2", "plcySprtCn": "자부담 30%"}
			]}}`))
		},
		work24: map[string]http.HandlerFunc{
			"training": func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<r><scn_list><trprId>T1</trprId></scn_list></r>`))
			},
		},
	})

	plan, err := service.BuildZeroCostPlan(context.Background(), "서울", 0)
	require.NoError(t, err)
	require.Len(t, plan.FreePolicies, 1)
	assert.Equal(t, "P1", plan.FreePolicies[0].PolicyNo)
	assert.NotNil(t, plan.Centers)
	require.Len(t, plan.Courses, 1)
}
