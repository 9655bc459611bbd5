package e2e

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// RegisterSteps registers all step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Background steps
	ctx.Step(`^the academy relay is running$`, tc.relayIsRunning)
	ctx.Step(`^the platform is initialized$`, tc.platformIsInitialized)

	// Course steps
	ctx.Step(`^the authority creates a course with (\d+) lessons and (\d+) XP per lesson$`, tc.authorityCreatesCourse)
	ctx.Step(`^the authority creates a course with (\d+) lessons, (\d+) XP per lesson and a (\d+) XP completion bonus$`, tc.authorityCreatesCourseWithBonus)
	ctx.Step(`^the authority deactivates the course$`, tc.authorityDeactivatesCourse)

	// Learner steps
	ctx.Step(`^the learner enrolls in the course$`, tc.learnerEnrolls)
	ctx.Step(`^the backend completes lesson (\d+) for the learner$`, tc.backendCompletesLesson)
	ctx.Step(`^the backend completes every lesson for the learner$`, tc.backendCompletesEveryLesson)
	ctx.Step(`^the backend finalizes the course for the learner$`, tc.backendFinalizes)
	ctx.Step(`^the backend issues the track credential$`, tc.backendIssuesCredential)
	ctx.Step(`^a stranger tries to complete lesson (\d+) for the learner$`, tc.strangerCompletesLesson)

	// Assertion steps
	ctx.Step(`^the response status should be (\d+)$`, tc.responseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.responseShouldContain)
	ctx.Step(`^the error should be "([^"]*)"$`, tc.errorShouldBe)
	ctx.Step(`^the enrollment should show (\d+) completed lessons$`, tc.enrollmentShowsCompleted)
	ctx.Step(`^the learner's XP balance should be (\d+)$`, tc.learnerBalanceShouldBe)
}

func (tc *TestContext) relayIsRunning(ctx context.Context) error {
	if err := tc.GET("/health/live"); err != nil {
		return err
	}
	if tc.LastResponse.StatusCode != http.StatusOK {
		return fmt.Errorf("relay not live: status %d", tc.LastResponse.StatusCode)
	}
	return nil
}

// platformIsInitialized claims the config for the run's fixed authority and
// delegates the backend-signer role to this scenario's backend identity.
// A conflict means an earlier scenario already initialized; that is fine.
func (tc *TestContext) platformIsInitialized(ctx context.Context) error {
	if err := tc.POST("/v1/config", tc.Authority, nil); err != nil {
		return err
	}
	if tc.LastResponse.StatusCode != http.StatusOK && tc.LastResponse.StatusCode != http.StatusConflict {
		return fmt.Errorf("initialize failed: status %d body %s", tc.LastResponse.StatusCode, string(tc.LastResponseBody))
	}

	body := map[string]interface{}{"backend_signer": tc.Backend.String()}
	if err := tc.PATCH("/v1/config", tc.Authority, body); err != nil {
		return err
	}
	if tc.LastResponse.StatusCode != http.StatusOK {
		return fmt.Errorf("delegate backend signer: status %d body %s", tc.LastResponse.StatusCode, string(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) createCourse(lessons, xpPerLesson, bonus int) error {
	tc.CourseID = "e2e-" + strings.Split(uuid.New().String(), "-")[0]
	body := map[string]interface{}{
		"course_id":           tc.CourseID,
		"creator":             tc.Creator.String(),
		"lesson_count":        lessons,
		"difficulty":          1,
		"xp_per_lesson":       xpPerLesson,
		"track_id":            7,
		"track_level":         1,
		"completion_bonus_xp": bonus,
	}
	return tc.POST("/v1/courses", tc.Authority, body)
}

func (tc *TestContext) authorityCreatesCourse(ctx context.Context, lessons, xpPerLesson int) error {
	return tc.createCourse(lessons, xpPerLesson, 0)
}

func (tc *TestContext) authorityCreatesCourseWithBonus(ctx context.Context, lessons, xpPerLesson, bonus int) error {
	return tc.createCourse(lessons, xpPerLesson, bonus)
}

func (tc *TestContext) authorityDeactivatesCourse(ctx context.Context) error {
	body := map[string]interface{}{"is_active": false}
	return tc.PATCH("/v1/courses/"+tc.CourseID, tc.Authority, body)
}

func (tc *TestContext) learnerEnrolls(ctx context.Context) error {
	body := map[string]interface{}{"course_id": tc.CourseID}
	return tc.POST("/v1/enrollments", tc.Learner, body)
}

func (tc *TestContext) backendCompletesLesson(ctx context.Context, index int) error {
	body := map[string]interface{}{
		"course_id":    tc.CourseID,
		"learner":      tc.Learner.String(),
		"lesson_index": index,
	}
	return tc.POST("/v1/lessons/complete", tc.Backend, body)
}

func (tc *TestContext) backendCompletesEveryLesson(ctx context.Context) error {
	if err := tc.GET("/v1/courses/" + tc.CourseID); err != nil {
		return err
	}
	raw, err := tc.GetResponseField("lesson_count")
	if err != nil {
		return err
	}
	lessons := int(raw.(float64))

	for i := 0; i < lessons; i++ {
		if err := tc.backendCompletesLesson(ctx, i); err != nil {
			return err
		}
		if tc.LastResponse.StatusCode != http.StatusOK {
			return fmt.Errorf("complete lesson %d: status %d body %s", i, tc.LastResponse.StatusCode, string(tc.LastResponseBody))
		}
	}
	return nil
}

func (tc *TestContext) backendFinalizes(ctx context.Context) error {
	body := map[string]interface{}{
		"course_id": tc.CourseID,
		"learner":   tc.Learner.String(),
	}
	return tc.POST("/v1/enrollments/finalize", tc.Backend, body)
}

func (tc *TestContext) backendIssuesCredential(ctx context.Context) error {
	body := map[string]interface{}{
		"course_id": tc.CourseID,
		"learner":   tc.Learner.String(),
	}
	return tc.POST("/v1/credentials", tc.Backend, body)
}

func (tc *TestContext) strangerCompletesLesson(ctx context.Context, index int) error {
	body := map[string]interface{}{
		"course_id":    tc.CourseID,
		"learner":      tc.Learner.String(),
		"lesson_index": index,
	}
	return tc.POST("/v1/lessons/complete", freshIdentity(), body)
}

func (tc *TestContext) responseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	if tc.LastResponse.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d but got %d\nResponse: %s",
			expectedStatus, tc.LastResponse.StatusCode, string(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) responseShouldContain(ctx context.Context, field string) error {
	if _, err := tc.GetResponseField(field); err != nil {
		return err
	}
	return nil
}

func (tc *TestContext) errorShouldBe(ctx context.Context, expected string) error {
	value, err := tc.GetResponseField("error")
	if err != nil {
		return err
	}
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("expected error %q but got %v\nResponse: %s", expected, value, string(tc.LastResponseBody))
	}
	return nil
}

func (tc *TestContext) enrollmentShowsCompleted(ctx context.Context, expected int) error {
	if err := tc.GET("/v1/courses/" + tc.CourseID + "/enrollments/" + tc.Learner.String()); err != nil {
		return err
	}
	raw, err := tc.GetResponseField("lessons_completed")
	if err != nil {
		return err
	}
	if got := int(raw.(float64)); got != expected {
		return fmt.Errorf("expected %d completed lessons but got %d", expected, got)
	}
	return nil
}

func (tc *TestContext) learnerBalanceShouldBe(ctx context.Context, expected int) error {
	if err := tc.GET("/v1/xp/" + tc.Learner.String()); err != nil {
		return err
	}
	raw, err := tc.GetResponseField("balance")
	if err != nil {
		return err
	}
	if got := int(raw.(float64)); got != expected {
		return fmt.Errorf("expected XP balance %d but got %d", expected, got)
	}
	return nil
}
