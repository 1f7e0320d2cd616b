package errcode

// 错误码约定：
// - 0：无错误
// - 4xxx：业务可恢复/告警类错误（例如编译器缺失但已回落到源码）
// - 5xxx：系统错误（需要中断流程）
const (
	OK               = 0
	CompilerFallback = 4005
	SystemError      = 5000
)
