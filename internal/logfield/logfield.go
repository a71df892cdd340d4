package lf

import "go.uber.org/zap"

const (
	FieldModule      = "module"
	FieldStudentCode = "student_code"
	FieldCourseCode  = "course_code"
	FieldPath        = "path"
	FieldGrade       = "grade"
	FieldCount       = "count"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func StudentCode(code string) zap.Field {
	return zap.String(FieldStudentCode, code)
}

func CourseCode(code string) zap.Field {
	return zap.String(FieldCourseCode, code)
}

func Path(path string) zap.Field {
	return zap.String(FieldPath, path)
}

func Grade(grade int) zap.Field {
	return zap.Int(FieldGrade, grade)
}

func Count(count int) zap.Field {
	return zap.Int(FieldCount, count)
}
