package seed

import (
	"context"
	"errors"
	"time"

	appModels "github.com/pharmahub/backend/internal/app/models"
	appRepos "github.com/pharmahub/backend/internal/app/repositories"
	appServices "github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/pkg/helpers"
	"github.com/pharmahub/backend/internal/pkg/jsonfield"
	"github.com/rs/zerolog"
)

// Default administrator created on an empty users table
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// CreateDefaultData creates the admin account and sample content for empty
// tables. Every step runs; failures are collected and returned together.
func CreateDefaultData(ctx context.Context, authService appServices.AuthService, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	created, err := authService.EnsureAdmin(ctx, DefaultAdminUsername, DefaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		finalErr = errors.Join(finalErr, err)
	} else if created {
		lgr.Warn().
			Str("username", DefaultAdminUsername).
			Str("password", DefaultAdminPassword).
			Msg("Seeded default admin user, please change the password")
	}

	if err := seedInternships(ctx, repos.InternshipRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedLectures(ctx, repos.LectureRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedQuestions(ctx, repos.QuestionRepository, time.Now().UTC(), lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedInternships(ctx context.Context, repo *appRepos.InternshipRepository, lgr zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	deadline1, deadline2 := "2025-03-15", "2025-04-01"
	internships := []appModels.Internship{
		{
			Title:        "تدريب صيدلة إكلينيكية",
			Type:         "صيدلة إكلينيكية",
			Duration:     "3 أشهر",
			Deadline:     &deadline1,
			Description:  "تدريب متخصص في الصيدلة الإكلينيكية في المستشفيات مع فرصة للعمل مع فريق طبي متخصص",
			Requirements: jsonfield.StringList{"خريج صيدلة", "معرفة باللغة الإنجليزية", "خبرة في العمل مع المرضى"},
			Benefits:     jsonfield.StringList{"راتب شهري", "تأمين صحي", "شهادة تدريب معتمدة"},
			Status:       "active",
		},
		{
			Title:        "تدريب صيدلة صناعية",
			Type:         "صيدلة صناعية",
			Duration:     "6 أشهر",
			Deadline:     &deadline2,
			Description:  "تدريب في مجال تصنيع الأدوية ومراقبة الجودة في شركة أدوية رائدة",
			Requirements: jsonfield.StringList{"خريج صيدلة", "معرفة بمعايير الجودة", "خبرة في المختبرات"},
			Benefits:     jsonfield.StringList{"راتب شهري", "تأمين صحي", "فرصة للتوظيف الدائم"},
			Status:       "active",
		},
	}

	for i := range internships {
		if _, err := repo.Create(ctx, &internships[i]); err != nil {
			lgr.Error().Err(err).Str("title", internships[i].Title).Msg("Error creating sample internship")
			return err
		}
	}
	lgr.Info().Int("count", len(internships)).Msg("Sample internships created")
	return nil
}

func seedLectures(ctx context.Context, repo *appRepos.LectureRepository, lgr zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	str := func(s string) *string { return &s }
	lectures := []appModels.Lecture{
		{
			Title:       "محاضرة في الصيدلة الإكلينيكية",
			Description: "محاضرة تفاعلية حول أساسيات الصيدلة الإكلينيكية وتطبيقاتها العملية في المستشفيات",
			Type:        "محاضرة تخصصية",
			Mode:        "أونلاين",
			Date:        "2025-01-15",
			Time:        str("10:00"),
			Location:    "رابط Zoom: https://zoom.us/j/123456789",
			Instructor:  str("د. أحمد محمد"),
		},
		{
			Title:       "صيدلة المجتمع",
			Description: "محاضرة تهدف إلى تعريف الطلاب بدور الصيدلي في المجتمع وكيفية تقديم المشورة الدوائية للمرضى",
			Type:        "ورشة عمل",
			Mode:        "أونلاين",
			Date:        "2025-02-25",
			Time:        str("6:00 مساءً"),
			Location:    "منصة زووم",
			Instructor:  str("د. فاطمة علي"),
			VideoURL:    str("https://zoom.us/j/123456789"),
		},
		{
			Title:       "الأخلاقيات في مهنة الصيدلة",
			Description: "محاضرة تهدف إلى تعزيز القيم الأخلاقية في مهنة الصيدلة ومسؤوليات الصيدلي تجاه المرضى والمجتمع",
			Type:        "محاضرة أخلاقية",
			Mode:        "مختلط",
			Date:        "2025-03-05",
			Time:        str("9:00 صباحاً"),
			Location:    "قاعة المحاضرات الرئيسية - كلية الصيدلة",
			Instructor:  str("أ.د امل كمال"),
		},
	}

	for i := range lectures {
		if _, err := repo.Create(ctx, &lectures[i]); err != nil {
			lgr.Error().Err(err).Str("title", lectures[i].Title).Msg("Error creating sample lecture")
			return err
		}
	}
	lgr.Info().Int("count", len(lectures)).Msg("Sample lectures created")
	return nil
}

var sampleComments = []string{
	"شكراً على السؤال المهم! هذا موضوع يحتاج إلى مزيد من البحث.",
	"أعتقد أن هذا السؤال يفتح مجالاً واسعاً للنقاش. هل يمكنك توضيح المزيد؟",
	"هناك دراسة حديثة نشرت في مجلة Nature تتحدث عن هذا الموضوع.",
	"من وجهة نظري، هذا النهج يمكن أن يكون فعالاً جداً في العلاج.",
	"هذا سؤال ممتاز! أعتقد أن الإجابة تكمن في فهم الآلية الجزيئية.",
}

var sampleCommentAuthors = []string{"د. أحمد", "د. فاطمة", "د. محمد", "د. سارة", "د. علي"}

func sampleQuestions() []appModels.Question {
	return []appModels.Question{
		{
			Title:    "كيف يمكن تحسين امتصاص الدواء الفموي؟",
			Content:  "أعمل على بحث يتعلق بتحسين امتصاص الأدوية الفموية، وأحتاج إلى نصائح حول الطرق المختلفة المستخدمة مثل استخدام المواد المساعدة للامتصاص وتعديل درجة الحموضة. هل يمكن لأحد مشاركة تجربته في هذا المجال؟",
			Category: "pharmaceutics",
			Author:   "أحمد محمد",
			Tags:     jsonfield.StringList{"امتصاص", "أدوية فموية", "صيدلة صناعية", "نانوتكنولوجي"},
		},
		{
			Title:    "آثار جانبية محتملة للعلاج الكيميائي",
			Content:  "أدرس في قسم الصيدلة الإكلينيكية وأحتاج إلى معلومات عن الآثار الجانبية الشائعة للعلاج الكيميائي وكيفية إدارتها. هل يمكن لأحد مشاركة بروتوكولات العلاج المستخدمة؟",
			Category: "clinical-pharmacy",
			Author:   "فاطمة علي",
			Tags:     jsonfield.StringList{"علاج كيميائي", "آثار جانبية", "صيدلة إكلينيكية", "إدارة الأدوية"},
		},
		{
			Title:    "طرق تحليل الأدوية في الدم",
			Content:  "أحتاج إلى مراجعة شاملة لطرق تحليل الأدوية في الدم المستخدمة في المختبرات الطبية، خاصة HPLC والكروماتوغرافيا الغازية (GC). هل يمكن لأحد شرح الفروق بين هذه الطرق؟",
			Category: "drug-analysis",
			Author:   "محمد أحمد",
			Tags:     jsonfield.StringList{"تحليل دم", "أدوية", "مختبرات طبية", "HPLC", "GC"},
		},
		{
			Title:    "استخدام النباتات الطبية في علاج الأمراض المزمنة",
			Content:  "أبحث في مجال علم العقاقير عن استخدام النباتات الطبية في علاج الأمراض المزمنة مثل السكري وارتفاع ضغط الدم. هل يمكن لأحد مشاركة دراسات حديثة في هذا المجال؟",
			Category: "pharmacognosy",
			Author:   "سارة محمود",
			Tags:     jsonfield.StringList{"نباتات طبية", "أمراض مزمنة", "علم العقاقير", "طب بديل"},
		},
		{
			Title:    "تطوير أشكال دوائية جديدة باستخدام التكنولوجيا الحيوية",
			Content:  "أعمل على مشروع يتعلق بتطوير أشكال دوائية جديدة باستخدام التكنولوجيا الحيوية. أريد معرفة المزيد عن استخدام البروتينات المؤتلفة في تطوير الأدوية.",
			Category: "pharmaceutical-chemistry",
			Author:   "علي حسن",
			Tags:     jsonfield.StringList{"تكنولوجيا حيوية", "بروتينات مؤتلفة", "علاج جيني", "أشكال دوائية"},
		},
		{
			Title:    "مناهج البحث في الدراسات السريرية",
			Content:  "أحتاج إلى فهم أفضل لمناهج البحث المستخدمة في الدراسات السريرية للأدوية، خاصة التجارب العشوائية المضبوطة (RCT) والدراسات المقطعية.",
			Category: "research-methods",
			Author:   "نور الدين",
			Tags:     jsonfield.StringList{"دراسات سريرية", "مناهج بحث", "RCT", "إحصاء حيوي"},
		},
	}
}

// seedQuestions spreads the sample questions over the last month and gives
// each one to four answers. Values are derived from the position so reseeding
// an empty forum is reproducible.
func seedQuestions(ctx context.Context, repo *appRepos.QuestionRepository, now time.Time, lgr zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	questions := sampleQuestions()
	for i := range questions {
		q := &questions[i]
		asked := now.AddDate(0, 0, -(i*5 + 1))
		q.CreatedAt = helpers.Timestamp(asked)
		q.Views = int64(10 + (i*37)%90)

		comments := make([]appModels.Comment, i%4+1)
		for j := range comments {
			comments[j] = appModels.Comment{
				Content:   sampleComments[(i+j)%len(sampleComments)],
				Author:    sampleCommentAuthors[(i*2+j)%len(sampleCommentAuthors)],
				CreatedAt: helpers.Timestamp(asked.Add(time.Duration(j+1) * time.Hour)),
			}
		}

		if _, err := repo.CreateWithComments(ctx, q, comments); err != nil {
			lgr.Error().Err(err).Str("title", q.Title).Msg("Error creating sample question")
			return err
		}
	}
	lgr.Info().Int("count", len(questions)).Msg("Sample Pharma Hub questions created")
	return nil
}
