// Copyright 2026 cinelens Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package base

import (
	"sync"
)

// Parallel schedules and runs tasks in parallel. nTask is the number of tasks.
// nJob is the number of executors. worker is the executed function passed a
// task id in [0, nTask). Tasks are sliced into contiguous ranges so that the
// assignment of tasks to executors is deterministic.
func Parallel(nTask, nJob int, worker func(taskId int) error) error {
	if nJob < 1 {
		nJob = 1
	}
	var wg sync.WaitGroup
	wg.Add(nJob)
	errs := make([]error, nJob)
	for j := 0; j < nJob; j++ {
		go func(jobId int) {
			defer wg.Done()
			begin := nTask * jobId / nJob
			end := nTask * (jobId + 1) / nJob
			for i := begin; i < end; i++ {
				if errs[jobId] = worker(i); errs[jobId] != nil {
					return
				}
			}
		}(j)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
